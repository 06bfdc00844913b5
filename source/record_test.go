package source

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewRendition(t *testing.T) {
	Convey("NewRendition", t, func() {
		Convey("Should map a missing quality to the unknown token", func() {
			r := NewRendition("https://cdn.example.com/v.mp4", "  ", "MP4")
			So(r.Quality, ShouldEqual, UnknownQuality)
			So(r.Format, ShouldEqual, "mp4")
		})

		Convey("Should default an empty format", func() {
			r := NewRendition("https://cdn.example.com/v", "720p", "")
			So(r.Format, ShouldEqual, DefaultFormat)
		})

		Convey("Should ignore negative sizes and non-positive frame rates", func() {
			size := int64(-1)
			fps := 0
			r := NewRendition("u", "720p", "mp4").WithSize(&size).WithFPS(&fps)
			So(r.Size.IsPresent(), ShouldBeFalse)
			So(r.FPS.IsPresent(), ShouldBeFalse)
		})

		Convey("Should keep a zero size as known", func() {
			size := int64(0)
			r := NewRendition("u", "720p", "mp4").WithSize(&size)
			So(r.Size.MustGet(), ShouldEqual, int64(0))
		})

		Convey("Should recognise the placeholder sentinel", func() {
			So(NewRendition(Placeholder, "1080p", "mp4").IsPlaceholder(), ShouldBeTrue)
			So(NewRendition("https://x", "1080p", "mp4").IsPlaceholder(), ShouldBeFalse)
		})
	})
}

func TestNewRecord(t *testing.T) {
	Convey("NewRecord", t, func() {
		Convey("Should fall back to the default title", func() {
			So(NewRecord("cobalt", "").Title, ShouldEqual, DefaultTitle)
		})

		Convey("Should encode absent optional fields as null", func() {
			rec := NewRecord("cobalt", "Clip", NewRendition("https://x", "1080p", "mp4"))
			rec.Uploader = Text("someone")

			data, err := json.Marshal(rec)
			So(err, ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded["thumbnail"], ShouldBeNil)
			So(decoded["uploader"], ShouldEqual, "someone")
			So(decoded["provider"], ShouldEqual, "cobalt")
		})
	})
}

func TestFail(t *testing.T) {
	Convey("Fail", t, func() {
		outcome := Fail("ytdlp", ErrNoMedia)

		Convey("Should produce an error outcome carrying a ProviderError", func() {
			So(outcome.IsError(), ShouldBeTrue)

			var perr *ProviderError
			So(errors.As(outcome.Error(), &perr), ShouldBeTrue)
			So(perr.Provider, ShouldEqual, "ytdlp")
			So(errors.Is(outcome.Error(), ErrNoMedia), ShouldBeTrue)
		})
	})
}
