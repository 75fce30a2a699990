package constants

const (
	AppName        = "bankbook"
	EnvPrefix      = "BANKBOOK"
	ConfigName     = "config"
	ConfigType     = "yaml"
	FallbackAppDir = ".bankbook"
)
