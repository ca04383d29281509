package tui

import (
	"github.com/akyairhashvil/cantieri/internal/transfer"
)

type ModalType int

const (
	ModalNone ModalType = iota
	ModalInput
	ModalConfirm
	ModalAssign
)

type ModalState interface {
	Type() ModalType
}

type inputPurpose int

const (
	inputJobSite inputPurpose = iota
	inputJobDescription
	inputEditDescription
	inputAddWorker
	inputAddSite
	inputAddVehicle
	inputImportPath
)

// InputState collects one line of text.
type InputState struct {
	Purpose inputPurpose
	Prompt  string
	JobID   int64
	Site    string
	Tab     int
}

func (s *InputState) Type() ModalType { return ModalInput }

type confirmAction int

const (
	confirmDeleteJob confirmAction = iota
	confirmDeleteWorker
	confirmDeleteSite
	confirmDeleteVehicle
	confirmImport
)

// ConfirmState asks a yes/no question before a destructive action.
type ConfirmState struct {
	Action confirmAction
	Prompt string
	ID     int64
	Import *pendingImport
}

func (s *ConfirmState) Type() ModalType { return ModalConfirm }

const (
	paneWorkers = iota
	paneVehicles
)

// AssignState edits the team and vehicles of one job before saving both.
type AssignState struct {
	JobID    int64
	Pane     int
	Cursor   [2]int
	Team     []int64
	Vehicles []int64
	Adding   bool
}

func (s *AssignState) Type() ModalType { return ModalAssign }

// pendingImport holds decoded records waiting for the overwrite confirmation.
type pendingImport struct {
	Tab     int
	Path    string
	Records []transfer.Record
	Jobs    []transfer.JobRecord
}

func (p *pendingImport) count() int {
	if p.Jobs != nil {
		return len(p.Jobs)
	}
	return len(p.Records)
}
