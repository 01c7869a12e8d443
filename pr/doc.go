// Package pr provides pull request creation for GitHub and GitLab.
//
// Core types:
//   - Provider: Interface for creating and fetching pull requests
//   - Options: Configuration for creating a pull request
//   - PullRequest: A created pull request with URL and number
//
// Implementations:
//   - GitHubProvider: GitHub PR provider using go-github
//   - GitLabProvider: GitLab MR provider using go-gitlab
//
// FromRemote picks the implementation from the git remote URL:
//
//	provider, err := pr.FromRemote(remoteURL, "owner/repo", token)
//	pull, err := provider.CreatePR(ctx, pr.Options{
//	    Title:      "feat: add login [WEB-482]",
//	    Body:       description,
//	    Head:       "feat/web-482-login-fix",
//	    SelfAssign: true,
//	})
package pr
