package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/vidgrab/vidgrab/filesystem"
	"github.com/vidgrab/vidgrab/resolver"
	"github.com/vidgrab/vidgrab/source"
	"github.com/vidgrab/vidgrab/view"
)

type stubSource struct {
	record *source.Record
}

func (s *stubSource) Name() string { return "stub" }
func (s *stubSource) ID() string   { return "stub" }

func (s *stubSource) Resolve(context.Context, string) source.Outcome {
	if s.record == nil {
		return source.Fail("stub", source.ErrNoMedia)
	}
	return source.Ok(s.record)
}

func stubRecord() *source.Record {
	return source.NewRecord("stub", "Clip",
		source.NewRendition("https://cdn.example/720.mp4", "720p", "mp4"),
		source.NewRendition("https://cdn.example/1080.mp4", "1080p", "mp4"),
		source.NewRendition("https://cdn.example/a.m4a", "Audio", "m4a"),
	)
}

func items() []view.Item {
	return view.Map(stubRecord(), "https://www.youtube.com/watch?v=x").Items
}

func TestParsePicker(t *testing.T) {
	Convey("ParsePicker", t, func() {
		pick := func(description string) []view.Item {
			picker, err := ParsePicker(description)
			So(err, ShouldBeNil)
			return picker(items())
		}

		Convey("Should reject an empty description", func() {
			_, err := ParsePicker("  ")
			So(err, ShouldNotBeNil)
		})

		Convey("all keeps everything", func() {
			So(pick("all"), ShouldHaveLength, 3)
		})

		Convey("first and last pick the ends", func() {
			So(pick("first")[0].Quality, ShouldEqual, "720p")
			So(pick("last")[0].Quality, ShouldEqual, "Audio")
		})

		Convey("best picks the tallest video", func() {
			best := pick("best")
			So(best, ShouldHaveLength, 1)
			So(best[0].Quality, ShouldEqual, "1080p")
		})

		Convey("audio keeps audio-only items", func() {
			audio := pick("audio")
			So(audio, ShouldHaveLength, 1)
			So(audio[0].URL, ShouldEqual, "https://cdn.example/a.m4a")
		})

		Convey("audio also matches webm audio and audio formats", func() {
			picker, err := ParsePicker("audio")
			So(err, ShouldBeNil)

			record := source.NewRecord("instavideo", "Clip",
				source.NewRendition("https://cdn.example/360.webm", "360p", "webm"),
				source.NewRendition("https://cdn.example/a.webm", "Audio", "webm"),
				source.NewRendition("https://cdn.example/b.mp3", "128k", "audio/mp3"),
			)
			audio := picker(view.Map(record, "https://www.instagram.com/p/x").Items)
			So(lo.Map(audio, func(item view.Item, _ int) string { return item.URL }), ShouldResemble, []string{
				"https://cdn.example/a.webm",
				"https://cdn.example/b.mp3",
			})
		})

		Convey("A number selects by 1-based index", func() {
			second := pick("2")
			So(second, ShouldHaveLength, 1)
			So(second[0].Index, ShouldEqual, 2)
			So(pick("9"), ShouldBeEmpty)
		})

		Convey("Anything else matches quality labels", func() {
			So(pick("720P"), ShouldHaveLength, 1)
			So(pick("4k"), ShouldBeEmpty)
		})
	})
}

func init() {
	filesystem.SetMemMapFs()
}

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		var buf bytes.Buffer
		url := "https://www.youtube.com/watch?v=x"

		Convey("Should fail without a resolver", func() {
			So(Run(context.Background(), &Options{Out: &buf, URL: url}), ShouldNotBeNil)
		})

		Convey("Should print one URL per line in plain mode", func() {
			options := &Options{
				Out:      &buf,
				URL:      url,
				Resolver: resolver.New([]source.Source{&stubSource{record: stubRecord()}}),
			}

			So(Run(context.Background(), options), ShouldBeNil)
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldHaveLength, 3)
			So(lines[0], ShouldEqual, "https://cdn.example/720.mp4")
		})

		Convey("Should not write anything to disk", func() {
			options := &Options{
				Out:      &buf,
				URL:      url,
				Resolver: resolver.New([]source.Source{&stubSource{record: stubRecord()}}),
			}

			So(Run(context.Background(), options), ShouldBeNil)

			var files []string
			So(afero.Walk(filesystem.API(), "/", func(path string, info fs.FileInfo, err error) error {
				if err == nil && !info.IsDir() {
					files = append(files, path)
				}
				return err
			}), ShouldBeNil)
			So(files, ShouldBeEmpty)
		})

		Convey("Should apply the picker", func() {
			picker, _ := ParsePicker("best")
			options := &Options{
				Out:      &buf,
				URL:      url,
				Resolver: resolver.New([]source.Source{&stubSource{record: stubRecord()}}),
				Picker:   mo.Some[Picker](picker),
			}

			So(Run(context.Background(), options), ShouldBeNil)
			So(strings.TrimSpace(buf.String()), ShouldEqual, "https://cdn.example/1080.mp4")
		})

		Convey("Should report nothing selected when every provider fails", func() {
			options := &Options{
				Out:      &buf,
				URL:      url,
				Resolver: resolver.New([]source.Source{&stubSource{}}),
			}

			err := Run(context.Background(), options)
			So(errors.Is(err, ErrNothingSelected), ShouldBeTrue)
			So(buf.Len(), ShouldEqual, 0)
		})

		Convey("Should write a JSON document in json mode", func() {
			options := &Options{
				Out:      &buf,
				URL:      url,
				Json:     true,
				Resolver: resolver.New([]source.Source{&stubSource{}}),
			}

			So(Run(context.Background(), options), ShouldBeNil)

			var output map[string]any
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output["url"], ShouldEqual, url)
			So(output["synthetic"], ShouldEqual, true)
			So(output["selected"], ShouldBeEmpty)
			So(output["view"], ShouldNotBeNil)
		})

		Convey("Should surface validation errors", func() {
			options := &Options{
				Out:      &buf,
				URL:      "not a url",
				Resolver: resolver.New([]source.Source{&stubSource{record: stubRecord()}}),
			}

			var verr *resolver.ValidationError
			So(errors.As(Run(context.Background(), options), &verr), ShouldBeTrue)
		})
	})
}
