package blockcypher

import "time"

type addressResponse struct {
	Address            string       `json:"address"`
	TotalReceived      int64        `json:"total_received"`
	TotalSent          int64        `json:"total_sent"`
	Balance            int64        `json:"balance"`
	UnconfirmedBalance int64        `json:"unconfirmed_balance"`
	FinalBalance       int64        `json:"final_balance"`
	NTx                uint64       `json:"n_tx"`
	UnconfirmedNTx     uint64       `json:"unconfirmed_n_tx"`
	FinalNTx           uint64       `json:"final_n_tx"`
	Txs                []txResponse `json:"txs"`
}

type txResponse struct {
	Hash          string       `json:"hash"`
	BlockHash     string       `json:"block_hash"`
	BlockHeight   int64        `json:"block_height"`
	Total         int64        `json:"total"`
	Fees          int64        `json:"fees"`
	Confirmations int64        `json:"confirmations"`
	Confirmed     time.Time    `json:"confirmed"`
	Received      time.Time    `json:"received"`
	Inputs        []ioResponse `json:"inputs"`
	Outputs       []ioResponse `json:"outputs"`
}

type ioResponse struct {
	Addresses []string `json:"addresses"`
}

type blockResponse struct {
	Hash   string    `json:"hash"`
	Height uint64    `json:"height"`
	Time   time.Time `json:"time"`
	Fees   int64     `json:"fees"`
	Total  int64     `json:"total"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}
