// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studypartner/go-study-partner/internal/service"
	"github.com/studypartner/go-study-partner/internal/validators"
	"github.com/studypartner/go-study-partner/models"
)

type mainLoopMode int

const (
	modeList mainLoopMode = iota
	modeSearch
	modeUpload
	modeStudy
	modeConfirmDelete
)

type (
	notesLoadedMsg struct {
		notes []models.Note
		err   error
	}

	uploadDoneMsg struct {
		note models.Note
		err  error
	}

	deleteDoneMsg struct {
		err error
	}

	searchDoneMsg struct {
		results []models.SearchResult
		err     error
	}
)

// mainLoopModel is the post-login UI: the notes dashboard with upload,
// semantic search, deletion, and the per-note study screen.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User

	mode   mainLoopMode
	notes  []models.Note
	cursor int

	searchInput   textinput.Model
	searchResults []models.SearchResult
	searchShown   bool

	uploadInput textinput.Model
	study       studyModel

	spin    spinner.Model
	busy    bool
	status  string
	errText string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.User) mainLoopModel {
	search := textinput.New()
	search.Placeholder = "what are you looking for?"
	search.CharLimit = 256

	upload := textinput.New()
	upload.Placeholder = "/path/to/document.pdf"
	upload.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		user:        user,
		searchInput: search,
		uploadInput: upload,
		spin:        sp,
		busy:        true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.cmdLoadNotes())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The study screen owns everything while it is open, except quitting.
	if m.mode == modeStudy {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		var cmd tea.Cmd
		m.study, cmd = m.study.update(msg)
		if m.study.closed {
			m.mode = modeList
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case notesLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.notes = msg.notes
		m.clampCursor()
		return m, nil

	case uploadDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = humanizeUploadError(msg.err)
			m.uploadInput.Focus()
			return m, textinput.Blink
		}
		m.mode = modeList
		m.status = fmt.Sprintf("Uploaded %q", msg.note.FileName)
		m.busy = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadNotes())

	case deleteDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Note deleted"
		m.busy = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadNotes())

	case searchDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.searchResults = msg.results
		m.searchShown = true
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeUpload:
		return m.handleUploadKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmDeleteKey(msg)
	}
	return m.handleListKey(msg)
}

func (m mainLoopModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.errText = ""

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.down):
		if m.cursor < m.visibleCount()-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.refresh):
		m.searchShown = false
		m.busy = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadNotes())

	case key.Matches(msg, keys.upload):
		m.mode = modeUpload
		m.uploadInput.SetValue("")
		m.uploadInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.search):
		m.mode = modeSearch
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.esc):
		if m.searchShown {
			m.searchShown = false
			m.cursor = 0
		}

	case key.Matches(msg, keys.delete):
		if m.selectedNote() != nil {
			m.mode = modeConfirmDelete
		}

	case key.Matches(msg, keys.enter):
		if note := m.selectedNote(); note != nil {
			m.mode = modeStudy
			m.study = newStudyModel(m.ctx, m.services.StudyService, *note)
			return m, m.study.init()
		}
	}

	return m, nil
}

func (m mainLoopModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		m.searchInput.Blur()
		return m, nil

	case key.Matches(msg, keys.enter):
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			return m, nil
		}
		m.mode = modeList
		m.searchInput.Blur()
		m.busy = true
		m.errText = ""
		return m, tea.Batch(m.spin.Tick, m.cmdSearch(query))
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		m.uploadInput.Blur()
		return m, nil

	case key.Matches(msg, keys.enter):
		path := strings.TrimSpace(m.uploadInput.Value())
		if path == "" {
			return m, nil
		}
		m.uploadInput.Blur()
		m.busy = true
		m.errText = ""
		return m, tea.Batch(m.spin.Tick, m.cmdUpload(path))
	}

	var cmd tea.Cmd
	m.uploadInput, cmd = m.uploadInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		note := m.selectedNote()
		m.mode = modeList
		if note == nil {
			return m, nil
		}
		m.busy = true
		m.errText = ""
		return m, tea.Batch(m.spin.Tick, m.cmdDelete(note.ID))

	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.mode = modeList
	}
	return m, nil
}

func (m mainLoopModel) visibleCount() int {
	if m.searchShown {
		return len(m.searchResults)
	}
	return len(m.notes)
}

func (m *mainLoopModel) clampCursor() {
	if n := m.visibleCount(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m mainLoopModel) selectedNote() *models.Note {
	if m.searchShown {
		if m.cursor < 0 || m.cursor >= len(m.searchResults) {
			return nil
		}
		return &m.searchResults[m.cursor].Note
	}

	if m.cursor < 0 || m.cursor >= len(m.notes) {
		return nil
	}
	return &m.notes[m.cursor]
}

func (m mainLoopModel) cmdLoadNotes() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.services.NotesService.List(m.ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m mainLoopModel) cmdUpload(path string) tea.Cmd {
	return func() tea.Msg {
		note, err := m.services.NotesService.Upload(m.ctx, path)
		return uploadDoneMsg{note: note, err: err}
	}
}

func (m mainLoopModel) cmdDelete(noteID int64) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{err: m.services.NotesService.Delete(m.ctx, noteID)}
	}
}

func (m mainLoopModel) cmdSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.services.NotesService.Search(m.ctx, query)
		return searchDoneMsg{results: results, err: err}
	}
}

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeStudy:
		return m.study.view()
	case modeSearch:
		return renderPage("SEARCH NOTES", "Query: "+m.searchInput.View(), "enter: search • esc: cancel")
	case modeUpload:
		data := "File path: " + m.uploadInput.View() + "\n\nSupported formats: .pdf, .docx, .txt"
		if m.busy {
			data += "\n\n" + m.spin.View() + " Uploading..."
		}
		if m.errText != "" {
			data += "\n\n" + errorStyle.Render(m.errText)
		}
		return renderPage("UPLOAD A DOCUMENT", data, "enter: upload • esc: cancel")
	case modeConfirmDelete:
		note := m.selectedNote()
		title := ""
		if note != nil {
			title = note.Title
		}
		data := fmt.Sprintf("Delete %q and everything generated from it?", fitText(title, 40))
		return renderPage("DELETE NOTE", data, "y: delete • n: keep")
	}

	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Signed in as %s <%s>\n\n", m.user.Name, m.user.Email))

	if m.busy {
		b.WriteString(m.spin.View() + " Working...\n")
	}

	title := "YOUR NOTES"
	if m.searchShown {
		title = "SEARCH RESULTS"
		m.renderSearchResults(&b)
	} else {
		m.renderNotes(&b)
	}

	if m.status != "" {
		b.WriteString("\n" + helpStyle.Render(m.status) + "\n")
	}
	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText) + "\n")
	}

	hotKeys := "enter: study • u: upload • /: search • r: refresh • d: delete • L: log out • q: quit"
	if m.searchShown {
		hotKeys = "enter: study • esc: all notes • q: quit"
	}

	return renderPage(title, b.String(), hotKeys)
}

func (m mainLoopModel) renderNotes(b *strings.Builder) {
	if len(m.notes) == 0 {
		b.WriteString("No notes yet. Press u to upload your first document.\n")
		return
	}

	for i, note := range m.notes {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-40s %6s  %s\n",
			cursor,
			fitText(note.Title, 40),
			humanByteSize(note.FileSize),
			note.CreatedAt.Format("2006-01-02"),
		))
	}
}

func (m mainLoopModel) renderSearchResults(b *strings.Builder) {
	if len(m.searchResults) == 0 {
		b.WriteString("Nothing matched your query.\n")
		return
	}

	for i, result := range m.searchResults {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-40s %.0f%% match\n",
			cursor,
			fitText(result.Title, 40),
			result.Similarity*100,
		))
	}
}

func humanizeUploadError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, validators.ErrFileNotFound), errors.Is(err, validators.ErrEmptyFilePath):
		return "File not found, check the path"
	case errors.Is(err, validators.ErrFileIsDirectory):
		return "The path points to a directory, not a file"
	case errors.Is(err, validators.ErrUnsupportedFileType), errors.Is(err, service.ErrUnsupportedFileType):
		return "Unsupported file type, only .pdf, .docx and .txt are accepted"
	case errors.Is(err, validators.ErrEmptyFile), errors.Is(err, service.ErrInvalidFileData):
		return "The file is empty or could not be read"
	default:
		return humanizeServerUnavailableError(err)
	}
}
