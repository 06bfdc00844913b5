package cmd

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidgrab/vidgrab/deliver"
	"github.com/vidgrab/vidgrab/view"
)

func TestHandOff(t *testing.T) {
	item := view.Item{Index: 1, URL: "https://cdn.example/clip.mp4", Filename: "clip.mp4", Actionable: true}

	Convey("Given a host that opens links", t, func() {
		deliverItem = func(string, string) error { return nil }
		defer func() { deliverItem = deliver.Deliver }()

		var out bytes.Buffer
		So(handOff(&out, item), ShouldBeNil)
		So(out.String(), ShouldContainSubstring, "opened clip.mp4")
	})

	Convey("Given a host without a handler", t, func() {
		deliverItem = func(url, filename string) error {
			return &deliver.Error{URL: url, Filename: filename, Err: errors.New("no handler")}
		}
		defer func() { deliverItem = deliver.Deliver }()

		Convey("The preview link should be printed instead of failing", func() {
			var out bytes.Buffer
			So(handOff(&out, item), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "could not open clip.mp4")
			So(out.String(), ShouldContainSubstring, "https://cdn.example/clip.mp4")
		})
	})

	Convey("Given a placeholder rendition", t, func() {
		deliverItem = func(url, filename string) error {
			return &deliver.Error{URL: url, Filename: filename, Err: deliver.ErrPlaceholder}
		}
		defer func() { deliverItem = deliver.Deliver }()

		Convey("The error should be returned", func() {
			var out bytes.Buffer
			So(errors.Is(handOff(&out, item), deliver.ErrPlaceholder), ShouldBeTrue)
			So(out.String(), ShouldBeEmpty)
		})
	})
}
