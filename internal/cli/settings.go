package cli

import (
	"fmt"

	"dayflow/internal/prefs"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	p, err := ctx.Prefs.Load()
	if err != nil {
		return err
	}
	fmt.Printf("category: %s\n", p.SelectedCategory)
	fmt.Printf("theme:    %s\n", p.Theme)
	return nil
}

type SettingsSetCmd struct {
	Category string `short:"c" help:"Default task category."`
	Theme    string `short:"t" help:"Theme (system|light|dark)."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	p, err := ctx.Prefs.Load()
	if err != nil {
		return err
	}

	if c.Category != "" {
		p.SelectedCategory = c.Category
	}
	if c.Theme != "" {
		switch prefs.Theme(c.Theme) {
		case prefs.ThemeSystem, prefs.ThemeLight, prefs.ThemeDark:
			p.Theme = prefs.Theme(c.Theme)
		default:
			return fmt.Errorf("invalid theme %q (system|light|dark)", c.Theme)
		}
	}

	if err := ctx.Prefs.Save(p); err != nil {
		return err
	}
	fmt.Println("Settings saved")
	return nil
}
