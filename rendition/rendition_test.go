package rendition

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidgrab/vidgrab/icon"
)

func TestClassify(t *testing.T) {
	Convey("Classify", t, func() {
		Convey("2160p is the 4K tier", func() {
			c := Classify("2160p", "mp4")
			So(c.Tier, ShouldEqual, Tier4K)
			So(c.Label, ShouldEqual, "4K Ultra HD")
			So(c.Icon, ShouldEqual, icon.Gem)
		})

		Convey("Oversized heights still land on the 4K tier", func() {
			So(Classify("3000000000p", "mp4").Tier, ShouldEqual, Tier4K)
			So(Classify("99999999999999999999", "mp4").Label, ShouldEqual, "4K Ultra HD")
		})

		Convey("1080p and 720p climb the ladder", func() {
			So(Classify("1080p", "mp4"), ShouldResemble, Class{Tier: Tier1080p, Label: "Full HD 1080p", Icon: icon.Crown})
			So(Classify("720", "webm"), ShouldResemble, Class{Tier: Tier720p, Label: "HD 720p", Icon: icon.Star})
			So(Classify("480p", "mp4"), ShouldResemble, Class{Tier: Tier480p, Label: "SD 480p", Icon: icon.Play})
		})

		Convey("360p keeps its label but shares the lowest badge", func() {
			c := Classify("360p", "mp4")
			So(c.Label, ShouldEqual, "SD 360p")
			So(c.Tier, ShouldEqual, Tier360p)
			So(c.Icon, ShouldEqual, icon.Play)
		})

		Convey("Below 360 falls back to Standard Quality", func() {
			c := Classify("240p", "mp4")
			So(c.Label, ShouldEqual, "Standard Quality")
			So(c.Tier, ShouldEqual, Tier360p)
		})

		Convey("Unparseable quality is the lowest tier without panicking", func() {
			So(func() { Classify("abc", "mp4") }, ShouldNotPanic)
			c := Classify("abc", "mp4")
			So(c.Tier, ShouldEqual, Tier360p)
			So(c.Label, ShouldEqual, "Standard Quality")
			So(Classify("", "").Label, ShouldEqual, "Standard Quality")
		})

		Convey("An audio format wins over a numeric-looking quality", func() {
			c := Classify("128k", "audio/mp3")
			So(c.Tier, ShouldEqual, TierAudio)
			So(c.Label, ShouldEqual, AudioLabel)
			So(c.Icon, ShouldEqual, icon.Music)
		})

		Convey("The audio check looks at the format only", func() {
			So(Classify("audio", "mp3").Label, ShouldEqual, "Standard Quality")
		})
	})
}

func TestLeadingInt(t *testing.T) {
	Convey("LeadingInt", t, func() {
		cases := []struct {
			in   string
			want int
			ok   bool
		}{
			{"1080p", 1080, true},
			{"  720", 720, true},
			{"+480p60", 480, true},
			{"-5", -5, true},
			{"p1080", 0, false},
			{"-", 0, false},
			{"", 0, false},
			{"99999999999999999999", MaxLeadingInt, true},
			{"-99999999999999999999p", -MaxLeadingInt, true},
		}

		for _, c := range cases {
			n, ok := LeadingInt(c.in)
			So(ok, ShouldEqual, c.ok)
			So(n, ShouldEqual, c.want)
		}
	})
}
