package cmd

type Config struct {
	HTTPPort         string
	BackendBaseURL   string
	BackendTimeout   string
	OrderRefreshSpec string
	SupportPhone     string
	SupportEmail     string
	SupportTelegram  string
}
