package platform

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidgrab/vidgrab/icon"
)

func TestClassify(t *testing.T) {
	Convey("Classify", t, func() {
		Convey("Should give YouTube the same identity for both domains", func() {
			long := Classify("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
			short := Classify("https://youtu.be/dQw4w9WgXcQ")
			So(long, ShouldResemble, short)
			So(long.Label, ShouldEqual, "YouTube")
			So(long.Icon, ShouldEqual, icon.YouTube)
		})

		Convey("Should give twitter.com and x.com identical identities", func() {
			So(Classify("https://twitter.com/a/status/1"), ShouldResemble, Classify("https://x.com/a/status/1"))
			So(Classify("https://x.com/a/status/1").Accent, ShouldEqual, "#1da1f2")
		})

		Convey("Should map the remaining platforms", func() {
			So(Classify("https://www.instagram.com/reel/abc").Label, ShouldEqual, "Instagram")
			So(Classify("https://www.tiktok.com/@u/video/1").Label, ShouldEqual, "TikTok")
			So(Classify("https://www.facebook.com/watch?v=1").Label, ShouldEqual, "Facebook")
			So(Classify("https://vimeo.com/1").Label, ShouldEqual, "Vimeo")
			So(Classify("https://www.dailymotion.com/video/x1").Label, ShouldEqual, "Dailymotion")
		})

		Convey("Should be case-sensitive", func() {
			So(Classify("https://WWW.YOUTUBE.COM/watch"), ShouldResemble, Unknown)
		})

		Convey("Should fall back to Unknown", func() {
			id := Classify("https://example.org/video.mp4")
			So(id, ShouldResemble, Unknown)
			So(id.Accent, ShouldEqual, "#64748b")
			So(Classify(""), ShouldResemble, Unknown)
		})
	})
}

func TestKnown(t *testing.T) {
	Convey("Known lists each platform once", t, func() {
		So(Known(), ShouldResemble, []string{"YouTube", "Instagram", "TikTok", "Twitter", "Facebook", "Vimeo", "Dailymotion"})
	})
}
