package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	log "github.com/sirupsen/logrus"
)

func Test_config01(tst *testing.T) {

	chk.PrintTitle("config01. defaults")

	cfg, err := Load(filepath.Join(tst.TempDir(), "missing.ini"))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.StrAssert(cfg.Log.Level, "info")
	chk.StrAssert(cfg.Server.Addr, ":8080")
	chk.Float64(tst, "rate", 1e-15, cfg.Server.Rate, 2)
	chk.IntAssert(cfg.Server.Burst, 5)
}

func Test_config02(tst *testing.T) {

	chk.PrintTitle("config02. ini file and environment")

	path := filepath.Join(tst.TempDir(), DefaultFile)
	ini := `
[log]
level = debug
format = json

[server]
addr = 127.0.0.1:9000
rate = 0.5

[report]
author = J. Doe
`
	if err := os.WriteFile(path, []byte(ini), 0o644); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	tst.Setenv(EnvBurst, "12")
	tst.Setenv(EnvProject, "Warehouse")

	cfg, err := Load(path)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.StrAssert(cfg.Log.Level, "debug")
	chk.StrAssert(cfg.Log.Format, "json")
	chk.StrAssert(cfg.Server.Addr, "127.0.0.1:9000")
	chk.Float64(tst, "rate", 1e-15, cfg.Server.Rate, 0.5)
	chk.IntAssert(cfg.Server.Burst, 12)
	chk.IntAssert(cfg.Server.ShutdownTimeout, 5)
	chk.StrAssert(cfg.Report.Author, "J. Doe")
	chk.StrAssert(cfg.Report.Project, "Warehouse")

	SetupLogging(cfg.Log)
	defer SetupLogging(Default().Log)
	if log.GetLevel() != log.DebugLevel {
		tst.Errorf("test failed: level %v\n", log.GetLevel())
	}
	if _, ok := log.StandardLogger().Formatter.(*log.JSONFormatter); !ok {
		tst.Errorf("test failed: formatter %T\n", log.StandardLogger().Formatter)
	}

	SetupLogging(LogConfig{Level: "loud"})
	if log.GetLevel() != log.InfoLevel {
		tst.Errorf("test failed: unknown level gives %v\n", log.GetLevel())
	}
}
