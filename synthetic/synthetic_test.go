package synthetic

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidgrab/vidgrab/source"
)

func TestGenerate(t *testing.T) {
	Convey("Given any URL", t, func() {
		record := Generate("https://www.youtube.com/watch?v=x")

		Convey("The record should carry the fixed metadata", func() {
			So(record.Title, ShouldEqual, "Sample Video - Professional Quality Download")
			So(record.Duration.MustGet(), ShouldEqual, "3:45")
			So(record.Uploader.MustGet(), ShouldEqual, "Demo Channel")
			So(record.Thumbnail.IsPresent(), ShouldBeTrue)
			So(record.Provider, ShouldEqual, ID)
		})

		Convey("It should have exactly four placeholder renditions", func() {
			So(record.Renditions, ShouldHaveLength, 4)

			expected := []struct {
				quality, format string
				size            int64
			}{
				{"1080p", "mp4", 52428800},
				{"720p", "mp4", 31457280},
				{"480p", "mp4", 20971520},
				{"audio", "mp3", 5242880},
			}
			for i, e := range expected {
				r := record.Renditions[i]
				So(r.URL, ShouldEqual, source.Placeholder)
				So(r.Quality, ShouldEqual, e.quality)
				So(r.Format, ShouldEqual, e.format)
				So(r.Size.MustGet(), ShouldEqual, e.size)
			}
		})

		Convey("It should be deterministic", func() {
			So(Generate("https://vimeo.com/1"), ShouldResemble, record)
		})

		Convey("Records should not share renditions", func() {
			other := Generate("https://vimeo.com/1")
			other.Renditions[0].Quality = "changed"
			So(record.Renditions[0].Quality, ShouldEqual, "1080p")
		})
	})
}

func TestIs(t *testing.T) {
	Convey("Is", t, func() {
		Convey("Should hold for generated records", func() {
			So(Is(Generate("https://x.com/a")), ShouldBeTrue)
		})

		Convey("Should not hold for a record with a real link", func() {
			record := source.NewRecord("cobalt", "", source.NewRendition("https://cdn.example/v.mp4", "1080p", "mp4"))
			So(Is(record), ShouldBeFalse)
		})

		Convey("Should not hold for nil or empty records", func() {
			So(Is(nil), ShouldBeFalse)
			So(Is(source.NewRecord("cobalt", "")), ShouldBeFalse)
		})
	})
}
