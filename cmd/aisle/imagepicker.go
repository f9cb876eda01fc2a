package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aislehq/aisle/pkg/imaging"
)

const (
	imagePickerMaxShow    = 4
	imagePickerMaxEntries = 1000
)

// imagePickerModel displays an autocomplete popup for @-mentions of image
// files, so an --image path can be filled in without leaving the input.
type imagePickerModel struct {
	active   bool
	query    string   // text typed after '@'
	atPos    int      // rune position of '@' in input value
	entries  []string // cached image paths from WalkDir
	filtered []string // filtered by query
	cursor   int      // highlighted entry index
	maxShow  int
	width    int
}

func newImagePicker() imagePickerModel {
	return imagePickerModel{maxShow: imagePickerMaxShow}
}

// activate opens the picker at the given '@' position.
func (ip *imagePickerModel) activate(atPos int) tea.Cmd {
	ip.active = true
	ip.atPos = atPos
	ip.query = ""
	ip.cursor = 0
	ip.filtered = nil
	if len(ip.entries) > 0 {
		ip.applyFilter()
		return nil
	}
	return discoverImagesCmd
}

// dismiss closes the picker.
func (ip *imagePickerModel) dismiss() {
	ip.active = false
	ip.query = ""
	ip.filtered = nil
	ip.cursor = 0
}

// setEntries caches the discovered image list and applies the current filter.
func (ip *imagePickerModel) setEntries(entries []string) {
	ip.entries = entries
	if ip.active {
		ip.applyFilter()
	}
}

// setQuery updates the filter query and re-filters.
func (ip *imagePickerModel) setQuery(q string) {
	ip.query = q
	ip.cursor = 0
	ip.applyFilter()
}

// selected returns the currently highlighted entry, or "" if none.
func (ip *imagePickerModel) selected() string {
	if len(ip.filtered) == 0 {
		return ""
	}
	return ip.filtered[ip.cursor]
}

// handleKey processes navigation keys while the picker is active.
func (ip *imagePickerModel) handleKey(msg tea.KeyMsg) (consumed bool, sel string) {
	switch msg.Type {
	case tea.KeyUp:
		if ip.cursor > 0 {
			ip.cursor--
		}
		return true, ""
	case tea.KeyDown:
		if ip.cursor < len(ip.filtered)-1 {
			ip.cursor++
		}
		return true, ""
	case tea.KeyEnter, tea.KeyTab:
		sel := ip.selected()
		if sel != "" {
			ip.dismiss()
			return true, sel
		}
		return true, ""
	case tea.KeyEsc:
		ip.dismiss()
		return true, ""
	}
	return false, ""
}

// View renders the picker popup.
func (ip imagePickerModel) View() string {
	if !ip.active {
		return ""
	}

	innerWidth := max(ip.width-4, 20)

	var sb strings.Builder
	sb.WriteString(pickerHintStyle.Render("  images matching: @" + ip.query))
	sb.WriteString("\n")

	if len(ip.filtered) == 0 {
		sb.WriteString(pickerDimStyle.Render("  No images"))
	} else {
		show := min(len(ip.filtered), ip.maxShow)
		// Scroll window around cursor.
		start := 0
		if ip.cursor >= show {
			start = ip.cursor - show + 1
		}
		end := min(start+show, len(ip.filtered))

		for i := start; i < end; i++ {
			entry := ip.filtered[i]
			if i == ip.cursor {
				sb.WriteString(pickerCurStyle.Render(entry))
			} else {
				sb.WriteString(pickerDimStyle.Render(entry))
			}
			if i < end-1 {
				sb.WriteString("\n")
			}
		}
	}

	border := pickerBorder.Width(innerWidth)
	return border.Render(sb.String())
}

func (ip *imagePickerModel) applyFilter() {
	q := strings.ToLower(ip.query)
	if q == "" {
		ip.filtered = ip.entries
		if len(ip.filtered) > ip.maxShow*4 {
			ip.filtered = ip.filtered[:ip.maxShow*4]
		}
		return
	}

	var prefix, contains []string
	for _, e := range ip.entries {
		lower := strings.ToLower(e)
		base := strings.ToLower(filepath.Base(e))
		if strings.HasPrefix(base, q) {
			prefix = append(prefix, e)
		} else if strings.Contains(lower, q) {
			contains = append(contains, e)
		}
	}
	filtered := make([]string, 0, len(prefix)+len(contains))
	filtered = append(filtered, prefix...)
	filtered = append(filtered, contains...)
	ip.filtered = filtered
}

// discoverImagesCmd walks the working directory and collects files with a
// supported image extension.
func discoverImagesCmd() tea.Msg {
	supported := make(map[string]bool)
	for _, ext := range imaging.SupportedExtensions() {
		supported[ext] = true
	}

	skipDirs := map[string]bool{
		".git":         true,
		"node_modules": true,
		"vendor":       true,
		".aisle":       true,
	}

	var entries []string
	_ = filepath.WalkDir(".", func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return filepath.SkipDir
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if len(entries) >= imagePickerMaxEntries {
			return filepath.SkipAll
		}
		if supported[strings.ToLower(filepath.Ext(path))] {
			entries = append(entries, path)
		}
		return nil
	})

	sort.Strings(entries)
	return imagePickerEntriesMsg{entries: entries}
}
