package where

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidgrab/vidgrab/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestDirectories(t *testing.T) {
	dirs := map[string]func() string{
		"config":  Config,
		"cache":   Cache,
		"logs":    Logs,
		"sources": Sources,
		"temp":    Temp,
	}

	Convey("Every directory should exist once asked for", t, func() {
		for name, dir := range dirs {
			path := dir()
			So(path, ShouldNotBeEmpty)

			isDir, err := filesystem.API().IsDir(path)
			So(err, ShouldBeNil)
			So(isDir, ShouldBeTrue)
			So(filepath.IsAbs(path) || name == "cache", ShouldBeTrue)
		}
	})

	Convey("Logs and sources live under the config directory", t, func() {
		So(filepath.Dir(Logs()), ShouldEqual, Config())
		So(filepath.Dir(Sources()), ShouldEqual, Config())
	})

	Convey("Given the override variable", t, func() {
		t.Setenv(EnvConfigPath, "/tmp/vidgrab-test-config")

		Convey("Config should use it", func() {
			So(Config(), ShouldEqual, "/tmp/vidgrab-test-config")
			So(Sources(), ShouldEqual, "/tmp/vidgrab-test-config/sources")
		})
	})
}
