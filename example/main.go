// FILE: lixenwraith/env/example/main.go
package main

import (
	"log"
	"os"
	"time"

	"github.com/lixenwraith/env"
)

// ServerConfig showcases struct decoding from prefixed variables.
type ServerConfig struct {
	Host    string        `env:"server_host"`
	Port    int64         `env:"server_port"`
	Debug   bool          `env:"debug"`
	Timeout time.Duration `env:"timeout"`
	Tags    []string      `env:"tags"`
}

const overrideFilePath = "demo.overrides"

func main() {
	log.Println("➡️  Creating an override file...")

	overrides := "DEMO_SERVER_HOST=127.0.0.1\n" +
		"DEMO_SERVER_PORT=9090\n" +
		"DEMO_DEBUG=on\n" +
		"DEMO_TIMEOUT=45s\n" +
		"DEMO_TAGS=alpha,beta\n" +
		"DEMO_SECRET=\n" // Empty value: explicitly unset

	if err := os.WriteFile(overrideFilePath, []byte(overrides), 0644); err != nil {
		log.Fatalf("failed to write override file: %v", err)
	}
	defer func() {
		os.Remove(overrideFilePath)
		os.Unsetenv("DEMO_SERVER_HOST")
	}()

	env.AddOverridePath(overrideFilePath)

	// The live environment beats the override file.
	os.Setenv("DEMO_SERVER_HOST", "0.0.0.0")

	host, _ := env.Get("DEMO_SERVER_HOST")
	log.Printf("host: %s (environment wins over the file)", host)

	port, _ := env.GetInt64("DEMO_SERVER_PORT")
	log.Printf("port: %d (from the override file)", port)

	if debug, ok := env.GetBool("DEMO_DEBUG"); ok {
		log.Printf("debug: %v", debug)
	}

	if _, ok := env.GetRaw("DEMO_SECRET"); !ok {
		log.Println("DEMO_SECRET: explicitly unset by the file")
	}

	log.Println("➡️  Decoding the DEMO_ variables into a struct...")
	var cfg ServerConfig
	if err := env.Scan("DEMO_", &cfg); err != nil {
		log.Fatalf("scan failed: %v", err)
	}
	log.Printf("decoded: %+v", cfg)

	log.Println("➡️  Snapshot dump (TOML):")
	if err := env.Dump(os.Stdout); err != nil {
		log.Fatalf("dump failed: %v", err)
	}
}
