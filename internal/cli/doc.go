// Package cli implements argument conversion for opendigger-cli.
//
// Package: cli
// Title: Argument Conversion Layer
// Description: Turns raw command-line tokens into validated domain values.
//              Indicator tokens are split on the first ':', gated against
//              the capability catalogue under the current sibling-parameter
//              snapshot, and their query bodies delegated to the query
//              parser. Repository tokens are split on '/'. The package also
//              produces shell completion candidates and custom pflag values.
//              All failures are user-input errors carrying structured codes;
//              rendering to text happens at the command boundary.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
package cli
