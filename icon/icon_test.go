package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidgrab/vidgrab/key"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Crown

		Convey("Each variant should render differently", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(target), ShouldEqual, "FHD")

			viper.Set(key.IconsVariant, "emoji")
			So(Get(target), ShouldEqual, "👑")
		})

		Convey("It returns empty for an unregistered key", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Icon("nope")), ShouldBeEmpty)
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			result := Get(target)
			So(result, ShouldBeEmpty)
		})
	})

	Convey("Every registered icon defines every variant", t, func() {
		for _, variant := range AvailableVariants() {
			viper.Set(key.IconsVariant, variant)
			for i := range icons {
				So(Get(i), ShouldNotBeEmpty)
			}
		}
	})
}
