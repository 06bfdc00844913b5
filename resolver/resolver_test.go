package resolver

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidgrab/vidgrab/source"
	"github.com/vidgrab/vidgrab/synthetic"
)

type fakeSource struct {
	id      string
	calls   atomic.Int32
	resolve func(ctx context.Context, url string) source.Outcome
}

func (f *fakeSource) Name() string { return f.id }
func (f *fakeSource) ID() string   { return f.id }

func (f *fakeSource) Resolve(ctx context.Context, url string) source.Outcome {
	f.calls.Add(1)
	return f.resolve(ctx, url)
}

func failing(id string) *fakeSource {
	return &fakeSource{id: id, resolve: func(context.Context, string) source.Outcome {
		return source.Fail(id, errors.New("boom"))
	}}
}

func succeeding(id string) *fakeSource {
	return &fakeSource{id: id, resolve: func(_ context.Context, url string) source.Outcome {
		return source.Ok(source.NewRecord(id, id, source.NewRendition(url+"/"+id, "720p", "mp4")))
	}}
}

func TestValidate(t *testing.T) {
	Convey("Validate", t, func() {
		Convey("Should accept absolute URLs with surrounding spaces", func() {
			u, err := Validate("  https://www.youtube.com/watch?v=x ")
			So(err, ShouldBeNil)
			So(u.Host, ShouldEqual, "www.youtube.com")
		})

		for _, input := range []string{"", "   ", "not a url", "youtube.com/watch", "https://", "://broken"} {
			input := input
			Convey("Should reject "+input, func() {
				_, err := Validate(input)
				var verr *ValidationError
				So(errors.As(err, &verr), ShouldBeTrue)
				So(verr.Input, ShouldEqual, input)
			})
		}
	})
}

func TestResolve(t *testing.T) {
	Convey("Given sources A failing, B and C succeeding", t, func() {
		a, b, c := failing("a"), succeeding("b"), succeeding("c")
		r := New([]source.Source{a, b, c})

		Convey("Resolve should return B's record and never invoke C", func() {
			record, err := r.Resolve(context.Background(), "https://vimeo.com/1")
			So(err, ShouldBeNil)
			So(record.Provider, ShouldEqual, "b")
			So(record.Renditions[0].URL, ShouldEqual, "https://vimeo.com/1/b")
			So(a.calls.Load(), ShouldEqual, int32(1))
			So(b.calls.Load(), ShouldEqual, int32(1))
			So(c.calls.Load(), ShouldEqual, int32(0))
		})

		Convey("Transitions should be reported in order", func() {
			var states []State
			var sources []string
			r.OnTransition = func(tr Transition) {
				states = append(states, tr.State)
				sources = append(sources, tr.Source)
			}

			_, err := r.Resolve(context.Background(), "https://vimeo.com/1")
			So(err, ShouldBeNil)
			So(states, ShouldResemble, []State{Idle, Validating, Trying, Trying, Succeeded})
			So(sources, ShouldResemble, []string{"", "", "a", "b", "b"})
		})
	})

	Convey("Given every source fails", t, func() {
		r := New([]source.Source{failing("a"), failing("b"), failing("c")})

		Convey("Resolve should return the synthetic record without error", func() {
			record, err := r.Resolve(context.Background(), "https://www.tiktok.com/@x/video/1")
			So(err, ShouldBeNil)
			So(record.Renditions, ShouldHaveLength, 4)
			So(synthetic.Is(record), ShouldBeTrue)
			for _, rendition := range record.Renditions {
				So(rendition.URL, ShouldEqual, source.Placeholder)
			}
		})

		Convey("Exhaustion should be observable", func() {
			var last []State
			r.OnTransition = func(tr Transition) { last = append(last, tr.State) }
			_, _ = r.Resolve(context.Background(), "https://x.com/a")
			So(last[len(last)-2:], ShouldResemble, []State{Exhausted, Succeeded})
		})
	})

	Convey("Given no sources at all", t, func() {
		Convey("Resolve should still produce the synthetic record", func() {
			record, err := New(nil).Resolve(context.Background(), "https://x.com/a")
			So(err, ShouldBeNil)
			So(synthetic.Is(record), ShouldBeTrue)
		})
	})

	Convey("Given an invalid URL", t, func() {
		a := succeeding("a")
		r := New([]source.Source{a})

		Convey("Resolve should fail before contacting any source", func() {
			record, err := r.Resolve(context.Background(), "not a url")
			So(record, ShouldBeNil)
			var verr *ValidationError
			So(errors.As(err, &verr), ShouldBeTrue)
			So(a.calls.Load(), ShouldEqual, int32(0))
		})
	})

	Convey("Given a source that panics", t, func() {
		p := &fakeSource{id: "p", resolve: func(context.Context, string) source.Outcome { panic("kaboom") }}
		r := New([]source.Source{p, succeeding("b")})

		Convey("The panic should be treated as a failure", func() {
			record, err := r.Resolve(context.Background(), "https://vimeo.com/1")
			So(err, ShouldBeNil)
			So(record.Provider, ShouldEqual, "b")
		})
	})

	Convey("Given a source that succeeds with no renditions", t, func() {
		empty := &fakeSource{id: "e", resolve: func(context.Context, string) source.Outcome {
			return source.Ok(source.NewRecord("e", "nothing"))
		}}
		r := New([]source.Source{empty, succeeding("b")})

		Convey("It should be skipped", func() {
			record, _ := r.Resolve(context.Background(), "https://vimeo.com/1")
			So(record.Provider, ShouldEqual, "b")
		})
	})

	Convey("Given a source slower than the timeout", t, func() {
		slow := &fakeSource{id: "slow", resolve: func(ctx context.Context, _ string) source.Outcome {
			<-ctx.Done()
			return source.Fail("slow", ctx.Err())
		}}
		b := succeeding("b")
		r := New([]source.Source{slow, b})
		r.Timeout = 20 * time.Millisecond

		Convey("The next source should be tried", func() {
			record, err := r.Resolve(context.Background(), "https://vimeo.com/1")
			So(err, ShouldBeNil)
			So(record.Provider, ShouldEqual, "b")
		})
	})

	Convey("Given the caller cancels during the first attempt", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		first := &fakeSource{id: "first", resolve: func(ctx context.Context, url string) source.Outcome {
			cancel()
			return source.Ok(source.NewRecord("first", "late", source.NewRendition(url, "720p", "mp4")))
		}}
		second := succeeding("second")
		r := New([]source.Source{first, second})

		Convey("The late result should be discarded and no further source invoked", func() {
			record, err := r.Resolve(ctx, "https://vimeo.com/1")
			So(err, ShouldBeNil)
			So(synthetic.Is(record), ShouldBeTrue)
			So(second.calls.Load(), ShouldEqual, int32(0))
		})
	})

	Convey("Given the same failing chain resolved twice", t, func() {
		r := New([]source.Source{failing("a")})

		Convey("Both results should be equal", func() {
			one, _ := r.Resolve(context.Background(), "https://x.com/a")
			two, _ := r.Resolve(context.Background(), "https://x.com/a")
			So(one, ShouldResemble, two)
		})
	})
}
