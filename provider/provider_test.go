package provider

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidgrab/vidgrab/filesystem"
	"github.com/vidgrab/vidgrab/key"
	"github.com/vidgrab/vidgrab/where"
	"github.com/zalando/go-keyring"
)

func init() {
	filesystem.SetMemMapFs()
	keyring.MockInit()
}

func ids[T interface{ ID() string }](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID())
	}
	return out
}

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("When getting a builtin by name in any case", t, func() {
		p, ok := Get("COBALT")
		Convey("Then it should be found", func() {
			So(ok, ShouldBeTrue)
			So(p.ID, ShouldEqual, "cobalt")
			So(p.IsCustom, ShouldBeFalse)
		})
	})
}

func TestFind(t *testing.T) {
	Convey("When searching with a typo-free prefix", t, func() {
		found := Find("insta")
		Convey("Then the matching provider should come first", func() {
			So(found, ShouldNotBeEmpty)
			So(found[0].ID, ShouldEqual, "instavideo")
		})
	})
}

func TestChain(t *testing.T) {
	Convey("Given the default order", t, func() {
		viper.Set(key.ProvidersOrder, []string{"cobalt", "instavideo", "ytdlp"})
		viper.Set(key.ProvidersCustom, false)

		Convey("The chain should follow it", func() {
			chain, err := Chain()
			So(err, ShouldBeNil)
			So(ids(chain), ShouldResemble, []string{"cobalt", "instavideo", "ytdlp"})
		})
	})

	Convey("Given a reordered list with duplicates", t, func() {
		viper.Set(key.ProvidersOrder, []string{"ytdlp", "cobalt", "ytdlp"})
		viper.Set(key.ProvidersCustom, false)

		Convey("Each provider should appear once in the given order", func() {
			chain, err := Chain()
			So(err, ShouldBeNil)
			So(ids(chain), ShouldResemble, []string{"ytdlp", "cobalt"})
		})
	})

	Convey("Given an unknown provider name", t, func() {
		viper.Set(key.ProvidersOrder, []string{"cobalt", "nope"})

		Convey("Chain should fail", func() {
			_, err := Chain()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "nope")
		})
	})

	Convey("Given custom scripts are enabled", t, func() {
		viper.Set(key.ProvidersOrder, []string{"cobalt"})
		viper.Set(key.ProvidersCustom, true)

		good := filepath.Join(where.Sources(), "demo.lua")
		broken := filepath.Join(where.Sources(), "broken.lua")
		So(filesystem.API().WriteFile(good, []byte(`function ResolveMedia(url) return nil end`), 0644), ShouldBeNil)
		So(filesystem.API().WriteFile(broken, []byte(`x = 1`), 0644), ShouldBeNil)
		defer func() {
			_ = filesystem.API().Remove(good)
			_ = filesystem.API().Remove(broken)
		}()

		Convey("Loadable scripts should be appended after the builtins", func() {
			chain, err := Chain()
			So(err, ShouldBeNil)
			So(ids(chain), ShouldResemble, []string{"cobalt", "demo custom"})
		})
	})
}
