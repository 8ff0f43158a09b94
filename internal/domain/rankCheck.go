package domain

// Status de uma linha do lote de verificação
const (
	KeywordStatusSuccess = "success"
	KeywordStatusError   = "error"
)

// RankCheckRequest representa a verificação de uma única palavra-chave
type RankCheckRequest struct {
	Domain    string  `json:"domain" validate:"required"`
	Keyword   string  `json:"keyword" validate:"required"`
	Location  string  `json:"location,omitempty"`
	ClientID  *string `json:"clientId,omitempty"`
	KeywordID *string `json:"keywordId,omitempty"`
}

// BatchRankRequest representa a verificação de um lote de palavras-chave de um domínio
type BatchRankRequest struct {
	Domain     string   `json:"domain" validate:"required"`
	Keywords   []string `json:"keywords" validate:"required,min=1,dive,required"`
	Location   string   `json:"location,omitempty"`
	ClientID   *string  `json:"clientId,omitempty"`
	KeywordIDs []string `json:"keywordIds,omitempty"`
}

// KeywordRankResult é o resultado de uma palavra-chave dentro do lote
type KeywordRankResult struct {
	Keyword      string  `json:"keyword"`
	Rank         *int    `json:"rank"`
	InTop100     bool    `json:"inTop100"`
	PreviousRank *int    `json:"previousRank"`
	RankChange   *int    `json:"rankChange"`
	Status       string  `json:"status"`
	Error        *string `json:"error,omitempty"`
	ErrorCode    string  `json:"errorCode,omitempty"`
	Suggestion   *string `json:"suggestion,omitempty"`
}

// BatchRankResponse resume a execução de um lote
type BatchRankResponse struct {
	Total      int                 `json:"total"`
	Successful int                 `json:"successful"`
	Failed     int                 `json:"failed"`
	Results    []KeywordRankResult `json:"results"`
	Warning    *string             `json:"warning,omitempty"`
}
