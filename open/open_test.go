package open

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidgrab/vidgrab/constant"
)

func TestCommand(t *testing.T) {
	Convey("Command", t, func() {
		target := "https://cdn.example/v.mp4?a=1&b=2"

		Convey("Should use xdg-open on linux", func() {
			cmd, err := Command(constant.Linux, target, "")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", target})
		})

		Convey("Should run the app directly on linux", func() {
			cmd, err := Command(constant.Linux, target, "mpv")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"mpv", target})
		})

		Convey("Should use open -a on darwin", func() {
			cmd, err := Command(constant.Darwin, target, "IINA")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"open", "-a", "IINA", target})
		})

		Convey("Should escape ampersands for cmd start", func() {
			cmd, err := Command(constant.Windows, target, "vlc")
			So(err, ShouldBeNil)
			So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "https://cdn.example/v.mp4?a=1^&b=2")
		})

		Convey("Should use termux-open on android", func() {
			cmd, err := Command(constant.Android, target, "")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"termux-open", target})
		})

		Convey("Should reject unknown platforms", func() {
			_, err := Command("plan9", target, "")
			So(errors.Is(err, ErrUnsupported), ShouldBeTrue)
		})
	})
}
