package constants

const (
	OPENED                string = "opened"
	SYNCHRONIZE           string = "synchronize"
	REOPENED              string = "reopened"
	GITHUB                string = "Github"
	GITHUB_ENDPOINT       string = "/github/webhook"
	GITHUB_TOKEN          string = "GITHUB_TOKEN"
	GITHUB_WEBHOOK_SECRET string = "GITHUB_WEBHOOK_SECRET"
	GITEA                 string = "Gitea"
	GITEA_TOKEN           string = "GITEA_TOKEN"
	GITEA_WEBHOOK_SECRET  string = "GITEA_WEBHOOK_SECRET"
	GITEA_ENDPOINT        string = "/gitea/webhook"
	PR_NUMBER             string = "PR_NUMBER"
	REPO_OWNER            string = "REPO_OWNER"
	REPO_NAME             string = "REPO_NAME"
	GITHUB_REPOSITORY     string = "GITHUB_REPOSITORY"
	GITEA_REPOSITORY      string = "GITEA_REPOSITORY"

	OPEN     string = "open"
	GOOGLEAI string = "googleai"
	OPENAI   string = "openai"
	CLAUDAI  string = "claudai"
)
