package configuration

type Configuration struct {
	Environment *Environment `mapstructure:"environment"`
	LogLevel    string       `mapstructure:"log"`
	ColorMode   string       `mapstructure:"color"`
}

type Environment struct {
	Home            string `mapstructure:"home"`
	ConfigDirectory string `mapstructure:"configDirectory"`
}
