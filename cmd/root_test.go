package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRootHelp(t *testing.T) {
	Convey("The root help should list the recognized platforms", t, func() {
		So(rootCmd.Long, ShouldContainSubstring, "Recognized platforms: YouTube, Instagram, TikTok")
		So(rootCmd.Long, ShouldContainSubstring, "Dailymotion")
	})
}
