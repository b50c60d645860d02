// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"math"
	"strings"
	"text/template"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/vorlif/humanize"
)

func (p *Presenter) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"timeFormat":     p.timeFormat,
		"localizedTime":  p.localizedTime,
		"naturalTime":    p.naturalTime,
		"floatFormat":    p.floatFormat,
		"windDirIcon":    p.windDirIcon,
		"hourByOffset":   p.hourByOffset,
		"emojiWithSpace": EmojiWithSpace,
		"loc":            p.loc,
		"lc":             strings.ToLower,
		"uc":             strings.ToUpper,
	}
}

func (p *Presenter) loc(val string) string {
	val = strings.ToLower(val)
	if raw, ok := i18nVars[val]; ok {
		return p.localizer.Get(raw)
	}
	return val
}

func (p *Presenter) localizedTime(val time.Time) string {
	return p.humanizer.FormatTime(val, humanize.TimeFormat)
}

func (p *Presenter) naturalTime(val time.Time) string {
	return p.humanizer.NaturalTime(val)
}

func (p *Presenter) timeFormat(val time.Time, fmt string) string {
	return val.Format(fmt)
}

func (p *Presenter) floatFormat(val float64, precision int) string {
	pow := math.Pow(10, float64(precision))
	return fmt.Sprintf("%.*f", precision, math.Trunc(val*pow)/pow)
}

func (p *Presenter) windDirIcon(val string) string {
	if icon, ok := windDirIcons[strings.ToUpper(val)]; ok {
		return icon
	}
	return ""
}

// hourByOffset returns the upcoming hour at the given offset (0-based).
func (p *Presenter) hourByOffset(ctx TemplateContext, offset int) HourView {
	if offset < 0 || offset >= len(ctx.Upcoming) {
		return HourView{}
	}
	return ctx.Upcoming[offset]
}

// EmojiWithSpace pads an emoji with trailing spaces according to its display width.
func EmojiWithSpace(emoji string) string {
	width := runewidth.StringWidth(emoji)
	return fmt.Sprintf("%s%s", emoji, strings.Repeat(" ", width+1))
}
