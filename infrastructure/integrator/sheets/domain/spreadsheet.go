package domain

// Spreadsheet é o inventário do documento: abas existentes e suas posições.
type Spreadsheet struct {
	SpreadsheetID string                `json:"spreadsheetId"`
	Properties    SpreadsheetProperties `json:"properties"`
	Sheets        []Sheet               `json:"sheets"`
}

type SpreadsheetProperties struct {
	Title string `json:"title"`
}

type Sheet struct {
	Properties SheetProperties `json:"properties"`
}

type SheetProperties struct {
	SheetID int64  `json:"sheetId"`
	Title   string `json:"title"`
	Index   int64  `json:"index"`
}

// ValueRange é o corpo das escritas de células.
type ValueRange struct {
	Range  string  `json:"range"`
	Values [][]any `json:"values"`
}

// BatchUpdateRequest agrupa mutações estruturais do documento (abas,
// gráficos, reordenação).
type BatchUpdateRequest struct {
	Requests []Request `json:"requests"`
}

type Request struct {
	AddSheet              *AddSheetRequest              `json:"addSheet,omitempty"`
	DeleteSheet           *DeleteSheetRequest           `json:"deleteSheet,omitempty"`
	UpdateSheetProperties *UpdateSheetPropertiesRequest `json:"updateSheetProperties,omitempty"`
	AddChart              *AddChartRequest              `json:"addChart,omitempty"`
}

type AddSheetRequest struct {
	Properties SheetProperties `json:"properties"`
}

type DeleteSheetRequest struct {
	SheetID int64 `json:"sheetId"`
}

type UpdateSheetPropertiesRequest struct {
	Properties SheetProperties `json:"properties"`
	Fields     string          `json:"fields"`
}

type AddChartRequest struct {
	Chart EmbeddedChart `json:"chart"`
}

type EmbeddedChart struct {
	Spec     ChartSpec              `json:"spec"`
	Position EmbeddedObjectPosition `json:"position"`
}

type ChartSpec struct {
	Title      string          `json:"title"`
	BasicChart *BasicChartSpec `json:"basicChart,omitempty"`
}

type BasicChartSpec struct {
	ChartType      string             `json:"chartType"`
	LegendPosition string             `json:"legendPosition"`
	HeaderCount    int64              `json:"headerCount"`
	Domains        []BasicChartDomain `json:"domains"`
	Series         []BasicChartSeries `json:"series"`
}

type BasicChartDomain struct {
	Domain ChartData `json:"domain"`
}

type BasicChartSeries struct {
	Series     ChartData `json:"series"`
	TargetAxis string    `json:"targetAxis"`
}

type ChartData struct {
	SourceRange *ChartSourceRange `json:"sourceRange,omitempty"`
}

type ChartSourceRange struct {
	Sources []GridRange `json:"sources"`
}

type GridRange struct {
	SheetID          int64 `json:"sheetId"`
	StartRowIndex    int64 `json:"startRowIndex"`
	EndRowIndex      int64 `json:"endRowIndex"`
	StartColumnIndex int64 `json:"startColumnIndex"`
	EndColumnIndex   int64 `json:"endColumnIndex"`
}

type EmbeddedObjectPosition struct {
	OverlayPosition *OverlayPosition `json:"overlayPosition,omitempty"`
}

type OverlayPosition struct {
	AnchorCell   GridCoordinate `json:"anchorCell"`
	WidthPixels  int64          `json:"widthPixels,omitempty"`
	HeightPixels int64          `json:"heightPixels,omitempty"`
}

type GridCoordinate struct {
	SheetID     int64 `json:"sheetId"`
	RowIndex    int64 `json:"rowIndex"`
	ColumnIndex int64 `json:"columnIndex"`
}

// BatchUpdateResponse traz as respostas na ordem das requisições; só o
// retorno de addSheet é consumido (para obter o sheetId criado).
type BatchUpdateResponse struct {
	Replies []Reply `json:"replies"`
}

type Reply struct {
	AddSheet *AddSheetReply `json:"addSheet,omitempty"`
}

type AddSheetReply struct {
	Properties SheetProperties `json:"properties"`
}

// ErrorResponse é o envelope de erro padrão da API do Sheets.
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
