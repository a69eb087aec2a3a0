package dto

type ExportOutput struct {
	Filename string
	Data     []byte
}

type ImportOutput struct {
	Users        int
	Entries      int
	ReturnVisits int
	BibleStudies int
}
