// File: defaults.go
// Title: Default OpenDigger Indicator Catalogue
// Description: Populates the registry with the OpenDigger indicator set and
//              its query capability flags. The network indicators reject
//              query suffixes, except the project OpenRank network which
//              requires one unless a uniform query was supplied for the
//              whole invocation.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial catalogue

package indicator

// Network indicator names with special capability handling
const (
	NameDeveloperNetwork       = "developer_network"
	NameRepoNetwork            = "repo_network"
	NameProjectOpenRankNetwork = "project_openrank_network"
)

// DefaultRegistry returns a registry populated with the OpenDigger catalogue
func DefaultRegistry() *Registry {
	r := New(Options{})

	for _, def := range defaultDefinitions() {
		r.MustRegister(def)
	}

	return r
}

func defaultDefinitions() []*Definition {
	filtered := func(name string, t Type, intro Introducer, desc string) *Definition {
		return &Definition{
			Name:         name,
			Type:         t,
			Introducer:   intro,
			Description:  desc,
			AcceptsQuery: true,
		}
	}

	return []*Definition{
		// X-lab metrics
		filtered("openrank", TypeRepo, IntroducerXLab, "global OpenRank of the repository"),
		filtered("activity", TypeRepo, IntroducerXLab, "repository activity"),
		filtered("attention", TypeRepo, IntroducerXLab, "stars plus forks attention measure"),
		filtered("active_dates_and_times", TypeRepo, IntroducerXLab, "active dates and times distribution"),

		// CHAOSS metrics
		filtered("stars", TypeRepo, IntroducerCHAOSS, "star events per month"),
		filtered("technical_fork", TypeRepo, IntroducerCHAOSS, "fork events per month"),
		filtered("participants", TypeRepo, IntroducerCHAOSS, "distinct participants per month"),
		filtered("new_contributors", TypeRepo, IntroducerCHAOSS, "first-time contributors per month"),
		filtered("inactive_contributors", TypeRepo, IntroducerCHAOSS, "contributors gone inactive"),
		filtered("bus_factor", TypeRepo, IntroducerCHAOSS, "bus factor estimation"),
		filtered("issues_new", TypeRepo, IntroducerCHAOSS, "newly opened issues"),
		filtered("issues_closed", TypeRepo, IntroducerCHAOSS, "closed issues"),
		filtered("issue_comments", TypeRepo, IntroducerCHAOSS, "issue comments"),
		filtered("issue_response_time", TypeRepo, IntroducerCHAOSS, "issue first response time"),
		filtered("issue_resolution_duration", TypeRepo, IntroducerCHAOSS, "issue resolution duration"),
		filtered("issue_age", TypeRepo, IntroducerCHAOSS, "age of open issues"),
		filtered("code_change_lines_add", TypeRepo, IntroducerCHAOSS, "added lines of code"),
		filtered("code_change_lines_remove", TypeRepo, IntroducerCHAOSS, "removed lines of code"),
		filtered("code_change_lines_sum", TypeRepo, IntroducerCHAOSS, "net changed lines of code"),
		filtered("change_requests", TypeRepo, IntroducerCHAOSS, "opened change requests"),
		filtered("change_requests_accepted", TypeRepo, IntroducerCHAOSS, "accepted change requests"),
		filtered("change_requests_reviews", TypeRepo, IntroducerCHAOSS, "change request reviews"),
		filtered("change_request_response_time", TypeRepo, IntroducerCHAOSS, "change request first response time"),
		filtered("change_request_resolution_duration", TypeRepo, IntroducerCHAOSS, "change request resolution duration"),
		filtered("change_request_age", TypeRepo, IntroducerCHAOSS, "age of open change requests"),

		// User metrics
		filtered("developer_openrank", TypeUser, IntroducerXLab, "global OpenRank of the user"),
		filtered("developer_activity", TypeUser, IntroducerXLab, "user activity"),

		// Network indicators: structural data, no per-indicator filtering
		{
			Name:         NameDeveloperNetwork,
			Type:         TypeRepo,
			Introducer:   IntroducerXLab,
			Description:  "collaboration network between developers",
			AcceptsQuery: false,
		},
		{
			Name:         NameRepoNetwork,
			Type:         TypeRepo,
			Introducer:   IntroducerXLab,
			Description:  "dependency network between repositories",
			AcceptsQuery: false,
		},
		// Project OpenRank network needs a time scope to be meaningful
		{
			Name:          NameProjectOpenRankNetwork,
			Type:          TypeRepo,
			Introducer:    IntroducerXLab,
			Description:   "OpenRank network of the project",
			AcceptsQuery:  true,
			RequiresQuery: UnlessUniformQuery,
		},
	}
}
