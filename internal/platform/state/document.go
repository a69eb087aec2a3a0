package state

import (
	"encoding/json"
	"fmt"
	"time"
)

// StorageKey names the blob in key-value backends; kept for backups produced
// by earlier versions of the app.
const StorageKey = "relatorioCampoState_v1"

// DefaultCategories seeds the category list of a fresh document.
var DefaultCategories = []string{"Campo", "Revisitas", "Cartas", "Estudo Bíblico", "Carrinho", "Testemunho informal"}

// Document is the whole persisted application state. Field names match the
// JSON blob written by every previous version so backups stay portable.
type Document struct {
	Users         []User                `json:"users"`
	CurrentUserID *string               `json:"currentUserId"`
	Config        map[string]Profile    `json:"config"`
	Metas         map[string]Goal       `json:"metas"`
	MetasAbertas  map[string]GoalPeriod `json:"metasAbertas"`
	Anciaos       []Elder               `json:"anciaos"`
	Entries       []Entry               `json:"entries"`
	Revisitas     []ReturnVisit         `json:"revisitas"`
	Estudos       []BibleStudy          `json:"estudos"`
	Modalidades   []string              `json:"modalidades"`
	TimerState    *TimerState           `json:"timerState"`
}

type User struct {
	ID          string `json:"id"`
	Nome        string `json:"nome"`
	Congregacao string `json:"congregacao"`
	Tipo        string `json:"tipo"`
	Email       string `json:"email"`
	Senha       string `json:"senha"`
}

type Profile struct {
	Nome        string `json:"nome"`
	Congregacao string `json:"congregacao"`
	Tipo        string `json:"tipo"`
	Anciao      string `json:"anciao"`
}

type Goal struct {
	Tipo      string   `json:"tipo"`
	PubMensal *float64 `json:"pubMensal"`
	AuxMensal *float64 `json:"auxMensal"`
	RegTipo   string   `json:"regTipo"`
	RegMensal *float64 `json:"regMensal"`
	RegAnual  *float64 `json:"regAnual"`
}

type GoalPeriod struct {
	Tipo           string  `json:"tipo"`
	Inicio         string  `json:"inicio"`
	HorasEsperadas float64 `json:"horasEsperadas"`
}

type Elder struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}

type Entry struct {
	ID               string `json:"id"`
	UserID           string `json:"userId"`
	Data             string `json:"data"`
	Horas            int    `json:"horas"`
	Minutos          int    `json:"minutos"`
	Modalidade       string `json:"modalidade"`
	Obs              string `json:"obs"`
	Publicacoes      int    `json:"publicacoes"`
	RevisitasAbertas int    `json:"revisitasAbertas"`
	Cartas           int    `json:"cartas"`
}

type HistoryItem struct {
	ID          string `json:"id"`
	Data        string `json:"data"`
	Observacoes string `json:"observacoes"`
}

type ReturnVisit struct {
	ID         string        `json:"id"`
	UserID     string        `json:"userId"`
	Nome       string        `json:"nome"`
	Endereco   string        `json:"endereco"`
	Telefone   string        `json:"telefone"`
	Publicacao string        `json:"publicacao"`
	Assunto    string        `json:"assunto"`
	Historico  []HistoryItem `json:"historico"`
}

type BibleStudy struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Nome      string        `json:"nome"`
	Endereco  string        `json:"endereco"`
	Telefone  string        `json:"telefone"`
	DiaHora   string        `json:"diaHora"`
	Historico []HistoryItem `json:"historico"`
}

type TimerPerson struct {
	Tipo string `json:"tipo"`
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

type TimerState struct {
	UserID           string        `json:"userId"`
	Start            time.Time     `json:"start"`
	Pause            bool          `json:"pause"`
	PauseStart       *time.Time    `json:"pauseStart"`
	PausedTime       int64         `json:"pausedTime"`
	Modalidades      []string      `json:"modalidades"`
	Pessoas          []TimerPerson `json:"pessoas"`
	LastHourNotified int           `json:"lastHourNotified"`
}

// New returns an empty document with the default category list.
func New() Document {
	doc := Document{}
	doc.Normalize()
	return doc
}

// Normalize fills in containers missing from documents written by older
// versions.
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Config == nil {
		d.Config = map[string]Profile{}
	}
	if d.Metas == nil {
		d.Metas = map[string]Goal{}
	}
	if d.MetasAbertas == nil {
		d.MetasAbertas = map[string]GoalPeriod{}
	}
	if d.Anciaos == nil {
		d.Anciaos = []Elder{}
	}
	if d.Entries == nil {
		d.Entries = []Entry{}
	}
	if d.Revisitas == nil {
		d.Revisitas = []ReturnVisit{}
	}
	if d.Estudos == nil {
		d.Estudos = []BibleStudy{}
	}
	if len(d.Modalidades) == 0 {
		d.Modalidades = append([]string(nil), DefaultCategories...)
	}
	for i := range d.Revisitas {
		if d.Revisitas[i].Historico == nil {
			d.Revisitas[i].Historico = []HistoryItem{}
		}
	}
	for i := range d.Estudos {
		if d.Estudos[i].Historico == nil {
			d.Estudos[i].Historico = []HistoryItem{}
		}
	}
}

// Clone returns a deep copy safe to hand to code running outside the
// repository lock.
func (d Document) Clone() Document {
	raw, err := json.Marshal(d)
	if err != nil {
		panic(fmt.Sprintf("state: clone document: %v", err))
	}
	out := Document{}
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("state: clone document: %v", err))
	}
	return out
}

// Encode renders the document the way exports and the state file store it.
func Encode(doc Document) ([]byte, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return raw, nil
}

// Decode parses a blob and normalises missing containers.
func Decode(raw []byte) (Document, error) {
	doc := Document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("decode state: %w", err)
	}
	doc.Normalize()
	return doc, nil
}

// CurrentUser returns the logged-in user id, or "" when nobody is logged in.
func (d *Document) CurrentUser() string {
	if d.CurrentUserID == nil {
		return ""
	}
	return *d.CurrentUserID
}

func (d *Document) SetCurrentUser(userID string) {
	if userID == "" {
		d.CurrentUserID = nil
		return
	}
	d.CurrentUserID = &userID
}
