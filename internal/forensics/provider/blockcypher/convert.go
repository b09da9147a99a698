package blockcypher

import (
	"slices"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

func convertAddress(resp addressResponse, now time.Time) model.AddressSnapshot {
	txs := make([]model.Transaction, 0, len(resp.Txs))
	heights := make([]uint64, 0, len(resp.Txs))
	var first, last time.Time
	for _, raw := range resp.Txs {
		tx := convertTransaction(raw)
		txs = append(txs, tx)
		if tx.BlockHash != "" && !slices.Contains(heights, tx.BlockHeight) {
			heights = append(heights, tx.BlockHeight)
		}
		if tx.Timestamp.IsZero() {
			continue
		}
		if first.IsZero() || tx.Timestamp.Before(first) {
			first = tx.Timestamp
		}
		if tx.Timestamp.After(last) {
			last = tx.Timestamp
		}
	}
	slices.Sort(heights)

	return model.AddressSnapshot{
		Address: model.Address{
			Address:            resp.Address,
			Balance:            btcutil.Amount(resp.Balance),
			UnconfirmedBalance: btcutil.Amount(resp.UnconfirmedBalance),
			FinalBalance:       btcutil.Amount(resp.FinalBalance),
			TotalReceived:      btcutil.Amount(resp.TotalReceived),
			TotalSent:          btcutil.Amount(resp.TotalSent),
			TxCount:            resp.NTx,
			UnconfirmedTxCount: resp.UnconfirmedNTx,
			FinalTxCount:       resp.FinalNTx,
			FirstSeen:          first,
			LastSeen:           last,
			BlockHeights:       heights,
			UpdatedAt:          now.UTC(),
		},
		Transactions: txs,
	}
}

func convertTransaction(raw txResponse) model.Transaction {
	tx := model.Transaction{
		Hash:      raw.Hash,
		Timestamp: raw.Received.UTC(),
		Inputs:    flattenAddresses(raw.Inputs),
		Outputs:   flattenAddresses(raw.Outputs),
		Total:     btcutil.Amount(raw.Total),
		Fee:       btcutil.Amount(raw.Fees),
		State:     model.TxPending,
	}
	if raw.Confirmations > 0 && raw.BlockHeight >= 0 {
		tx.State = model.TxConfirmed
		tx.BlockHash = raw.BlockHash
		tx.BlockHeight = uint64(raw.BlockHeight)
		if !raw.Confirmed.IsZero() {
			tx.Timestamp = raw.Confirmed.UTC()
		}
	}
	return tx
}

func flattenAddresses(ios []ioResponse) []string {
	all := make([]string, 0, len(ios))
	for _, io := range ios {
		all = append(all, io.Addresses...)
	}
	return model.UniqueAddresses(all)
}

func convertBlock(resp blockResponse) model.Block {
	return model.Block{
		Hash:      resp.Hash,
		Height:    resp.Height,
		Timestamp: resp.Time.UTC(),
		Fees:      btcutil.Amount(resp.Fees),
		Volume:    btcutil.Amount(resp.Total),
	}
}
