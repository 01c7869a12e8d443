package pr

import "os"

// TokenFromEnv returns the access token for a platform from the
// environment, or empty if none is set.
//
// Environment variables checked:
//   - GITHUB_TOKEN for GitHub
//   - GITLAB_TOKEN for GitLab
//   - GIT_TOKEN as fallback for either
func TokenFromEnv(platform Platform) string {
	var token string
	switch platform {
	case PlatformGitHub:
		token = os.Getenv("GITHUB_TOKEN")
	case PlatformGitLab:
		token = os.Getenv("GITLAB_TOKEN")
	}
	if token == "" {
		token = os.Getenv("GIT_TOKEN")
	}
	return token
}
