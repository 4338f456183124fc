package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	ApiKey            string `usage:"API key required in the X-Api-Key header, empty disables authentication"`
	ApiSecret         string `usage:"API secret required in the X-Api-Secret header"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	ReadOnly          bool   `usage:"reject every operation that modifies tables"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() *Configuration {
	return &Configuration{
		HttpAddr:          "127.0.0.1:8080",
		EnableCompression: true,
		ShowBanner:        true,
		ShowConfig:        false,
	}
}
