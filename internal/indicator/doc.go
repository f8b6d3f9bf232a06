// Package indicator provides the indicator capability catalogue.
//
// Package: indicator
// Title: Indicator Capability Catalogue
// Description: Defines indicator names together with their query capability
//              flags: whether a name accepts a query suffix at all, and
//              whether it requires one under the current sibling parameters.
//              The conversion layer consults the registry for membership,
//              capability lookup, and name enumeration; it never mutates it.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
package indicator
