package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/triply-app/triply/internal/domain"
)

// modeFlag is a pflag.Value that validates travel modes at parse time.
type modeFlag struct {
	mode *domain.TravelMode
}

var _ pflag.Value = (*modeFlag)(nil)

func newModeFlag(mode *domain.TravelMode) *modeFlag {
	return &modeFlag{mode: mode}
}

func (f *modeFlag) String() string {
	if f.mode == nil {
		return ""
	}
	return string(*f.mode)
}

func (f *modeFlag) Set(s string) error {
	if !domain.ValidTravelModes[s] {
		return fmt.Errorf("invalid mode %q (walk, drive, transit, auto)", s)
	}
	*f.mode = domain.TravelMode(s)
	return nil
}

func (f *modeFlag) Type() string {
	return "mode"
}
