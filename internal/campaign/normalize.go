package campaign

import (
	"strconv"
	"strings"

	"dcofeed/internal/textutil"
)

func (c *Campaign) normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Headline = strings.TrimSpace(c.Headline)
	c.Frame1Text = strings.TrimSpace(c.Frame1Text)
	c.URLTemplate = strings.TrimSpace(c.URLTemplate)

	for i, text := range c.SecondaryTexts {
		c.SecondaryTexts[i] = strings.TrimSpace(text)
	}

	for i := range c.Characters {
		ch := &c.Characters[i]
		ch.ID = strings.TrimSpace(ch.ID)
		ch.Name = strings.TrimSpace(ch.Name)
		if ch.ID == "" && ch.Name != "" {
			ch.ID = textutil.Slug(ch.Name)
		}
	}

	for i := range c.Formats {
		f := &c.Formats[i]
		f.Name = strings.TrimSpace(f.Name)
		f.Kind = strings.TrimSpace(f.Kind)
		if f.Width == 0 && f.Height == 0 {
			if w, h, ok := parseDimensions(f.Name); ok {
				f.Width, f.Height = w, h
			}
		}
	}
}

// parseDimensions reads a "WxH" format name.
func parseDimensions(name string) (int, int, bool) {
	w, h, found := strings.Cut(strings.ToLower(name), "x")
	if !found {
		return 0, 0, false
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, false
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}
