package transport

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/dossier"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/reports"
)

// Amounts are in satoshis.

type addressResponse struct {
	Address            string    `json:"address"`
	Balance            int64     `json:"balance"`
	UnconfirmedBalance int64     `json:"unconfirmed_balance"`
	FinalBalance       int64     `json:"final_balance"`
	TotalReceived      int64     `json:"total_received"`
	TotalSent          int64     `json:"total_sent"`
	TxCount            uint64    `json:"tx_count"`
	UnconfirmedTxCount uint64    `json:"unconfirmed_tx_count"`
	FinalTxCount       uint64    `json:"final_tx_count"`
	FirstSeen          time.Time `json:"first_seen"`
	LastSeen           time.Time `json:"last_seen"`
	BlockHeights       []uint64  `json:"block_heights"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type transactionResponse struct {
	Hash        string    `json:"hash"`
	Timestamp   time.Time `json:"timestamp"`
	Inputs      []string  `json:"inputs"`
	Outputs     []string  `json:"outputs"`
	Total       int64     `json:"total"`
	Fee         int64     `json:"fee"`
	State       string    `json:"state"`
	BlockHash   string    `json:"block_hash,omitempty"`
	BlockHeight uint64    `json:"block_height,omitempty"`
	Patterns    []string  `json:"patterns"`
}

type blockResponse struct {
	Hash      string    `json:"hash"`
	Height    uint64    `json:"height"`
	Timestamp time.Time `json:"timestamp"`
	Fees      int64     `json:"fees"`
	Volume    int64     `json:"volume"`
}

type traceResponse struct {
	ID          string             `json:"id"`
	Direction   string             `json:"direction"`
	Seed        string             `json:"seed"`
	WindowDays  int                `json:"window_days"`
	MaxDepth    int                `json:"max_depth"`
	Connections []model.Connection `json:"connections"`
	Total       int                `json:"total"`
	CreatedAt   time.Time          `json:"created_at"`
}

type clusterResponse struct {
	ID             string    `json:"id"`
	BaseAddress    string    `json:"base_address"`
	Members        []string  `json:"members"`
	Label          string    `json:"label,omitempty"`
	WalletID       string    `json:"wallet_id,omitempty"`
	Algorithm      string    `json:"algorithm"`
	RiskType       string    `json:"risk_type,omitempty"`
	Description    string    `json:"description"`
	UpdatedToBlock uint64    `json:"updated_to_block,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type relationResponse struct {
	AddressA  string    `json:"address_a"`
	AddressB  string    `json:"address_b"`
	Kind      string    `json:"kind"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

type reportResponse struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	Trusted   bool      `json:"trusted"`
	Domains   []string  `json:"domains"`
}

type reportsResponse struct {
	Summary reports.Summary  `json:"summary"`
	Reports []reportResponse `json:"reports"`
}

type riskProfileResponse struct {
	Band      string            `json:"band"`
	Total     float64           `json:"total"`
	Factors   model.RiskFactors `json:"factors"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type dossierEntryResponse struct {
	Transaction transactionResponse `json:"transaction"`
	Block       *blockResponse      `json:"block"`
}

type dossierResponse struct {
	Address      addressResponse        `json:"address"`
	Risk         *riskProfileResponse   `json:"risk"`
	Reports      reports.Summary        `json:"reports"`
	Transactions []dossierEntryResponse `json:"transactions"`
	BuiltAt      time.Time              `json:"built_at"`
}

type correlationRequest struct {
	Addresses []string `json:"addresses"`
	Window    string   `json:"window"`
}

type correlationResponse struct {
	ID                string                      `json:"id"`
	Addresses         []string                    `json:"addresses"`
	Window            string                      `json:"window"`
	Series            map[string]model.HourSeries `json:"series"`
	Pairs             []model.CorrelatedPair      `json:"pairs"`
	TotalTransactions int                         `json:"total_transactions"`
	CreatedAt         time.Time                   `json:"created_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toAddress(a model.Address) addressResponse {
	return addressResponse{
		Address:            a.Address,
		Balance:            int64(a.Balance),
		UnconfirmedBalance: int64(a.UnconfirmedBalance),
		FinalBalance:       int64(a.FinalBalance),
		TotalReceived:      int64(a.TotalReceived),
		TotalSent:          int64(a.TotalSent),
		TxCount:            a.TxCount,
		UnconfirmedTxCount: a.UnconfirmedTxCount,
		FinalTxCount:       a.FinalTxCount,
		FirstSeen:          a.FirstSeen,
		LastSeen:           a.LastSeen,
		BlockHeights:       nonNil(a.BlockHeights),
		UpdatedAt:          a.UpdatedAt,
	}
}

func toTransaction(tx model.Transaction) transactionResponse {
	return transactionResponse{
		Hash:        tx.Hash,
		Timestamp:   tx.Timestamp,
		Inputs:      nonNil(tx.Inputs),
		Outputs:     nonNil(tx.Outputs),
		Total:       int64(tx.Total),
		Fee:         int64(tx.Fee),
		State:       string(tx.State),
		BlockHash:   tx.BlockHash,
		BlockHeight: tx.BlockHeight,
		Patterns:    toPatterns(tx.Patterns),
	}
}

func toPatterns(patterns []model.Pattern) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, string(p))
	}
	return out
}

func toTransactions(txs []model.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransaction(tx))
	}
	return out
}

func toBlock(b model.Block) blockResponse {
	return blockResponse{
		Hash:      b.Hash,
		Height:    b.Height,
		Timestamp: b.Timestamp,
		Fees:      int64(b.Fees),
		Volume:    int64(b.Volume),
	}
}

func toTrace(r model.TraceResult) traceResponse {
	return traceResponse{
		ID:          r.ID.String(),
		Direction:   string(r.Direction),
		Seed:        r.Seed,
		WindowDays:  r.WindowDays,
		MaxDepth:    r.MaxDepth,
		Connections: nonNil(r.Connections),
		Total:       r.Total,
		CreatedAt:   r.CreatedAt,
	}
}

func toCluster(c model.Cluster) clusterResponse {
	return clusterResponse{
		ID:             c.ID.String(),
		BaseAddress:    c.BaseAddress,
		Members:        nonNil(c.Members),
		Label:          c.Label,
		WalletID:       c.WalletID,
		Algorithm:      string(c.Algorithm),
		RiskType:       string(c.RiskType),
		Description:    c.Description,
		UpdatedToBlock: c.UpdatedToBlock,
		CreatedAt:      c.CreatedAt,
	}
}

func toRelations(relations []model.Relation) []relationResponse {
	out := make([]relationResponse, 0, len(relations))
	for _, r := range relations {
		out = append(out, relationResponse{
			AddressA:  r.AddressA,
			AddressB:  r.AddressB,
			Kind:      string(r.Kind),
			Value:     r.Value,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}

func toReports(filed []model.Report) reportsResponse {
	out := reportsResponse{Summary: reports.Summarize(filed), Reports: make([]reportResponse, 0, len(filed))}
	for _, r := range filed {
		out.Reports = append(out.Reports, reportResponse{
			ID:        r.ID,
			Address:   r.Address,
			Category:  r.Category,
			CreatedAt: r.CreatedAt,
			Trusted:   r.Trusted,
			Domains:   nonNil(r.Domains),
		})
	}
	return out
}

func toDossier(d dossier.Dossier) dossierResponse {
	out := dossierResponse{
		Address:      toAddress(d.Address),
		Reports:      d.Reports,
		Transactions: make([]dossierEntryResponse, 0, len(d.Transactions)),
		BuiltAt:      d.BuiltAt,
	}
	if d.Risk != nil {
		out.Risk = &riskProfileResponse{
			Band:      string(d.Risk.Band),
			Total:     d.Risk.Total,
			Factors:   d.Risk.Factors,
			UpdatedAt: d.Risk.UpdatedAt,
		}
	}
	for _, e := range d.Transactions {
		entry := dossierEntryResponse{Transaction: toTransaction(e.Transaction)}
		if e.Block != nil {
			b := toBlock(*e.Block)
			entry.Block = &b
		}
		out.Transactions = append(out.Transactions, entry)
	}
	return out
}

func toCorrelation(c model.TemporalCorrelation) correlationResponse {
	return correlationResponse{
		ID:                c.ID.String(),
		Addresses:         nonNil(c.Addresses),
		Window:            c.Window,
		Series:            c.Series,
		Pairs:             nonNil(c.Pairs),
		TotalTransactions: c.TotalTransactions,
		CreatedAt:         c.CreatedAt,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
