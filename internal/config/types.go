package config

type Config struct {
	Port        int
	Environment string
}
