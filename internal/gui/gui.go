// Package gui implements the desktop form over the same modify and
// strip operations as the command line.
package gui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"vidmeta/internal/dates"
	"vidmeta/internal/domain/consts"
	"vidmeta/internal/profiles"
	"vidmeta/internal/validation"
	"vidmeta/internal/writer"
)

// customProfileName is the sentinel device entry shown after a custom
// profile is loaded from disk.
const customProfileName = "Custom Profile"

const (
	actionModify = "Modify Metadata"
	actionStrip  = "Strip Metadata"
)

type form struct {
	win fyne.Window

	store  *profiles.Store
	writer *writer.Writer

	inputEntry  *widget.Entry
	outputEntry *widget.Entry

	deviceSelect  *widget.Select
	customProfile profiles.Profile

	preview *widget.Entry

	dateCheck *widget.Check
	dateEntry *widget.Entry

	actionRadio *widget.RadioGroup
	methodRadio *widget.RadioGroup

	processBtn *widget.Button
	progress   *widget.ProgressBarInfinite
	status     *widget.Label
}

// Run opens the form window and blocks until it is closed.
func Run() {
	a := app.New()
	win := a.NewWindow("Video Metadata Modifier")

	f := &form{
		win:    win,
		store:  profiles.NewStore(),
		writer: writer.New(),
	}

	win.SetContent(f.build())
	win.Resize(fyne.NewSize(800, 600))
	win.ShowAndRun()
}

// build assembles the form's widgets.
func (f *form) build() fyne.CanvasObject {
	f.inputEntry = widget.NewEntry()
	f.inputEntry.SetPlaceHolder("Input video file")
	browseInput := widget.NewButton("Browse", f.browseInput)

	f.outputEntry = widget.NewEntry()
	f.outputEntry.SetPlaceHolder("Output file")
	browseOutput := widget.NewButton("Browse", f.browseOutput)

	f.deviceSelect = widget.NewSelect(f.store.List(), f.onDeviceSelected)
	loadBtn := widget.NewButton("Load Custom Profile", f.loadCustomProfile)
	saveBtn := widget.NewButton("Save Current Profile", f.saveCurrentProfile)

	f.preview = widget.NewMultiLineEntry()
	f.preview.SetMinRowsVisible(8)
	f.preview.Disable()

	f.dateCheck = widget.NewCheck("Set custom creation date", nil)
	f.dateEntry = widget.NewEntry()
	f.dateEntry.SetText(dates.FormatTimestamp(time.Now()))

	f.actionRadio = widget.NewRadioGroup([]string{actionModify, actionStrip}, nil)
	f.actionRadio.SetSelected(actionModify)

	f.methodRadio = widget.NewRadioGroup([]string{
		consts.MethodFFmpeg,
		consts.MethodExifTool,
		consts.MethodMP4Tag,
	}, nil)
	f.methodRadio.SetSelected(consts.MethodFFmpeg)

	f.processBtn = widget.NewButton("Process Video", f.process)
	f.progress = widget.NewProgressBarInfinite()
	f.progress.Stop()
	f.status = widget.NewLabel("Ready")

	return container.NewVBox(
		widget.NewLabel("Input Video File:"),
		container.NewBorder(nil, nil, nil, browseInput, f.inputEntry),
		widget.NewLabel("Device Profile:"),
		f.deviceSelect,
		container.NewHBox(loadBtn, saveBtn),
		widget.NewLabel("Metadata Preview:"),
		f.preview,
		container.NewHBox(f.dateCheck, f.dateEntry),
		widget.NewLabel("Output File:"),
		container.NewBorder(nil, nil, nil, browseOutput, f.outputEntry),
		widget.NewLabel("Action:"),
		f.actionRadio,
		widget.NewLabel("Method:"),
		f.methodRadio,
		f.processBtn,
		f.progress,
		f.status,
	)
}

// videoFilter lists the supported extensions for the file dialogs.
func videoFilter() storage.FileFilter {
	exts := make([]string, 0, len(consts.SupportedVideoExts))
	for ext := range consts.SupportedVideoExts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return storage.NewExtensionFileFilter(exts)
}

// browseInput selects the input file and suggests an output path beside it.
func (f *form) browseInput() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		rc.Close()

		f.inputEntry.SetText(path)

		ext := filepath.Ext(path)
		f.outputEntry.SetText(strings.TrimSuffix(path, ext) + consts.OutputSuffix + ext)
	}, f.win)
	fd.SetFilter(videoFilter())
	fd.Show()
}

// browseOutput selects the output location.
func (f *form) browseOutput() {
	fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		path := wc.URI().Path()
		wc.Close()
		f.outputEntry.SetText(path)
	}, f.win)
	fd.SetFilter(videoFilter())
	fd.Show()
}

// onDeviceSelected refreshes the preview for a built-in profile.
func (f *form) onDeviceSelected(name string) {
	if name == customProfileName {
		f.updatePreview(f.customProfile)
		return
	}

	profile, err := f.store.Get(name)
	if err != nil {
		return
	}
	f.updatePreview(profile)
}

// updatePreview lists each attribute and value, one per line.
func (f *form) updatePreview(profile profiles.Profile) {
	keys := make([]string, 0, len(profile))
	for key := range profile {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Selected Profile Metadata:\n\n")
	for _, key := range keys {
		b.WriteString(fmt.Sprintf("%s: %s\n", capitalize(key), profile[key]))
	}
	f.preview.SetText(b.String())
}

var titleCaser = cases.Title(language.English)

func capitalize(s string) string {
	return titleCaser.String(s)
}

// loadCustomProfile reads a profile JSON and switches the form to it.
func (f *form) loadCustomProfile() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		rc.Close()

		profile, err := profiles.LoadFile(path)
		if err != nil {
			dialog.ShowError(err, f.win)
			return
		}

		f.customProfile = profile
		f.addCustomProfileOption()
		f.deviceSelect.SetSelected(customProfileName)
		f.updatePreview(profile)
		dialog.ShowInformation("Success", "Custom profile loaded successfully!", f.win)
	}, f.win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	fd.Show()
}

// addCustomProfileOption appends the sentinel entry once.
func (f *form) addCustomProfileOption() {
	for _, opt := range f.deviceSelect.Options {
		if opt == customProfileName {
			return
		}
	}
	f.deviceSelect.Options = append(f.deviceSelect.Options, customProfileName)
	f.deviceSelect.Refresh()
}

// saveCurrentProfile writes the selected profile to a JSON file.
func (f *form) saveCurrentProfile() {
	profile, err := f.currentProfile()
	if err != nil {
		dialog.ShowError(err, f.win)
		return
	}

	fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		path := wc.URI().Path()
		wc.Close()

		if err := profiles.SaveFile(profile, path); err != nil {
			dialog.ShowError(err, f.win)
			return
		}
		dialog.ShowInformation("Success", "Profile saved successfully!", f.win)
	}, f.win)
	fd.SetFileName("profile.json")
	fd.Show()
}

// currentProfile resolves the profile for the selected device entry.
func (f *form) currentProfile() (profiles.Profile, error) {
	name := f.deviceSelect.Selected
	if name == "" {
		return nil, errors.New("please select a device profile")
	}
	if name == customProfileName {
		if len(f.customProfile) == 0 {
			return nil, errors.New("no custom profile loaded")
		}
		return f.customProfile, nil
	}
	return f.store.Get(name)
}

// process runs the selected operation on a background goroutine, keeping
// the form responsive. Completion is marshaled back with fyne.Do.
func (f *form) process() {
	input := f.inputEntry.Text
	output := f.outputEntry.Text

	if input == "" || output == "" {
		dialog.ShowError(errors.New("please select input and output files"), f.win)
		return
	}

	if !validation.ValidInputFile(input) {
		dialog.ShowError(errors.New("invalid input file"), f.win)
		return
	}

	modify := f.actionRadio.Selected == actionModify

	var profile profiles.Profile
	if modify {
		var err error
		if profile, err = f.currentProfile(); err != nil {
			dialog.ShowError(err, f.win)
			return
		}
	}

	var customDate string
	if f.dateCheck.Checked {
		normalized, err := dates.NormalizeCustomDate(f.dateEntry.Text)
		if err != nil {
			dialog.ShowError(err, f.win)
			return
		}
		customDate = normalized
	}

	backend := writer.ParseBackend(f.methodRadio.Selected)

	f.processBtn.Disable()
	f.progress.Start()
	f.status.SetText("Processing...")

	go func() {
		ctx := context.Background()

		var ok bool
		if modify {
			ok = f.writer.Modify(ctx, writer.Request{
				Input:      input,
				Output:     output,
				Profile:    profile,
				CustomDate: customDate,
				Backend:    backend,
			})
		} else {
			ok = f.writer.Strip(ctx, input, output)
		}

		fyne.Do(func() {
			f.finish(ok, modify)
		})
	}()
}

// finish updates the form after an operation completes.
func (f *form) finish(ok, modify bool) {
	f.progress.Stop()
	f.processBtn.Enable()

	verb, pastVerb := "strip", "stripped"
	if modify {
		verb, pastVerb = "modify", "modified"
	}

	if ok {
		f.status.SetText("Processing completed successfully!")
		dialog.ShowInformation("Success", fmt.Sprintf("Video metadata %s successfully!", pastVerb), f.win)
		return
	}

	f.status.SetText("Processing failed.")
	dialog.ShowError(fmt.Errorf("failed to %s video metadata", verb), f.win)
}
