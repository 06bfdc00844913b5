package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidgrab/vidgrab/open"
	"github.com/vidgrab/vidgrab/resolver"
	"github.com/vidgrab/vidgrab/source"
	"github.com/vidgrab/vidgrab/synthetic"
	"github.com/vidgrab/vidgrab/view"
)

func TestBubble(t *testing.T) {
	Convey("Given a fresh bubble", t, func() {
		b := newBubble(resolver.New(nil), &Options{})

		Convey("It should start on the input screen", func() {
			So(b.state, ShouldEqual, inputState)
			So(b.View(), ShouldContainSubstring, "Paste a link")
		})

		Convey("Submitting an invalid link should show an error", func() {
			b.inputC.SetValue("not a link")
			b.Update(tea.KeyMsg{Type: tea.KeyEnter})
			So(b.state, ShouldEqual, errorState)

			var verr *resolver.ValidationError
			So(errors.As(b.lastError, &verr), ShouldBeTrue)

			Convey("And esc should return to the input", func() {
				b.Update(tea.KeyMsg{Type: tea.KeyEsc})
				So(b.state, ShouldEqual, inputState)
			})
		})

		Convey("Submitting a valid link should start resolving", func() {
			b.inputC.SetValue("https://vimeo.com/1")
			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
			So(cmd, ShouldNotBeNil)
			So(b.state, ShouldEqual, resolvingState)
			So(b.generation, ShouldEqual, 1)

			Convey("Stale results should be ignored", func() {
				b.Update(resolvedMsg{generation: 0, model: view.Map(synthetic.Generate("x"), "https://vimeo.com/1")})
				So(b.state, ShouldEqual, resolvingState)
			})

			Convey("Current results should be listed", func() {
				b.Update(resolvedMsg{generation: 1, model: view.Map(synthetic.Generate("x"), "https://vimeo.com/1")})
				So(b.state, ShouldEqual, resultsState)
				So(b.resultsC.Items(), ShouldHaveLength, 4)
			})

			Convey("Preview should open the selected rendition", func() {
				var opened []string
				openURL = func(target, _ string) error {
					opened = append(opened, target)
					return nil
				}
				defer func() { openURL = open.Start }()

				record := source.NewRecord("cobalt", "Clip", source.NewRendition("https://cdn.example/clip.mp4", "720p", "mp4"))
				b.Update(resolvedMsg{generation: 1, model: view.Map(record, "https://vimeo.com/1")})

				msg := b.openPreview()()
				So(opened, ShouldResemble, []string{"https://cdn.example/clip.mp4"})
				So(msg, ShouldEqual, "Opened preview of Clip.mp4")
			})

			Convey("Preview should refuse placeholders", func() {
				called := false
				openURL = func(string, string) error {
					called = true
					return nil
				}
				defer func() { openURL = open.Start }()

				b.Update(resolvedMsg{generation: 1, model: view.Map(synthetic.Generate("x"), "https://vimeo.com/1")})

				So(b.openPreview()(), ShouldEqual, "No preview for a placeholder rendition")
				So(called, ShouldBeFalse)
			})

			Convey("Esc should cancel it", func() {
				b.Update(tea.KeyMsg{Type: tea.KeyEsc})
				So(b.state, ShouldEqual, inputState)
				So(b.cancel, ShouldBeNil)
			})
		})
	})
}

func TestListItem(t *testing.T) {
	Convey("Given a list item", t, func() {
		fps := 60
		record := source.NewRecord("cobalt", "Clip", source.NewRendition("https://cdn.example/v.mp4", "1080p", "mp4").WithFPS(&fps))
		item := &listItem{item: view.Map(record, "https://vimeo.com/1").Items[0]}

		Convey("It should describe the rendition", func() {
			So(item.Title(), ShouldContainSubstring, "Full HD 1080p")
			So(item.Description(), ShouldContainSubstring, "MP4")
			So(item.Description(), ShouldContainSubstring, "60fps")
			So(item.Description(), ShouldContainSubstring, "Clip.mp4")
			So(item.FilterValue(), ShouldEqual, "1080p")
		})

		Convey("Placeholders should be marked unavailable", func() {
			placeholder := &listItem{item: view.Map(synthetic.Generate("x"), "https://vimeo.com/1").Items[0]}
			So(placeholder.Description(), ShouldContainSubstring, "unavailable")
		})
	})
}

func TestDescribe(t *testing.T) {
	Convey("describe", t, func() {
		b := newBubble(resolver.New(nil), &Options{})

		So(b.describe(resolver.Transition{State: resolver.Trying, Index: 0, Source: "cobalt"}), ShouldStartWith, "Asking cobalt")
		So(b.describe(resolver.Transition{State: resolver.Exhausted, Index: -1}), ShouldContainSubstring, "placeholders")
	})
}
