package config

import (
	"flag"
	"io"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParse(t *testing.T) {
	Convey("Parse layers file, flags and overrides", t, func() {
		path := writeFile(t, "kind: vitality\ndef:\n  size: 20\n  period: 500ms\n  seed: 3\n")

		Convey("The file overrides defaults", func() {
			c, err := Parse(newFlagSet(), []string{"-config", path})
			So(err, ShouldBeNil)
			So(c.Size, ShouldEqual, 20)
			So(c.Seed, ShouldEqual, 3)
		})

		Convey("Explicit flags override the file", func() {
			c, err := Parse(newFlagSet(), []string{"-config", path, "-size", "8"})
			So(err, ShouldBeNil)
			So(c.Size, ShouldEqual, 8)
			So(c.Period, ShouldEqual, 500*time.Millisecond)
		})

		Convey("-set overrides everything", func() {
			c, err := Parse(newFlagSet(), []string{"-config", path, "-size", "8", "-set", "size=11", "-set", "rule=conway"})
			So(err, ShouldBeNil)
			So(c.Size, ShouldEqual, 11)
			So(c.Rule, ShouldEqual, "conway")
		})

		Convey("Invalid results are rejected", func() {
			_, err := Parse(newFlagSet(), []string{"-rule", "seeds"})
			So(err, ShouldNotBeNil)
			_, err = Parse(newFlagSet(), []string{"-set", "noequals"})
			So(err, ShouldNotBeNil)
		})
	})

	Convey("KVList keeps the last value per key", t, func() {
		var l KVList
		So(l.Set("size=3"), ShouldBeNil)
		So(l.Set("size = 4"), ShouldBeNil)
		So(l.Map(), ShouldResemble, map[string]string{"size": "4"})
		So(l.String(), ShouldEqual, "size=3,size = 4")
	})
}
