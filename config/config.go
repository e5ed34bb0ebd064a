package config

// Config carries one mining run's parameters. Output is the path of the
// patterns file; when it is empty the patterns are collected in memory
// instead. Support is the absolute minimum support as a sequence count.
type Config struct {
	Output  string
	Support int
}

func (c *Config) Copy() *Config {
	return &Config{
		Output:  c.Output,
		Support: c.Support,
	}
}
