package clickhouse

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

const (
	genesisAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
	otherAddress   = "1BoatSLRHtKNngkdXEeobR76b53LETtpyT"
)

func (s *RepositorySuite) TestAddressRoundTrip() {
	seen := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	in := model.Address{
		Address:       genesisAddress,
		Balance:       5000,
		TotalReceived: 7000,
		TotalSent:     2000,
		TxCount:       2,
		FirstSeen:     seen,
		LastSeen:      seen.Add(time.Hour),
		BlockHeights:  []uint64{1, 2},
	}

	first, err := s.repo.UpsertAddress(s.testCtx, in)
	s.Require().NoError(err)

	in.Balance = 1
	second, err := s.repo.UpsertAddress(s.testCtx, in)
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID, "surrogate id must survive upserts")

	got, err := s.repo.GetAddress(s.testCtx, genesisAddress)
	s.Require().NoError(err)
	s.Equal(first.ID, got.ID)
	s.EqualValues(1, got.Balance)
	s.True(got.FirstSeen.Equal(seen))
	s.Equal([]uint64{1, 2}, got.BlockHeights)

	addresses, err := s.repo.ListAddresses(s.testCtx)
	s.Require().NoError(err)
	s.Equal([]string{genesisAddress}, addresses)

	_, err = s.repo.GetAddress(s.testCtx, otherAddress)
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *RepositorySuite) TestTransactionsRoundTrip() {
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		{Hash: "b2", Timestamp: ts.Add(time.Hour), Inputs: []string{otherAddress}, Outputs: []string{genesisAddress}, Total: 10, State: model.TxPending},
		{Hash: "a1", Timestamp: ts, Inputs: []string{genesisAddress}, Outputs: []string{otherAddress, "x"}, Total: 20, Fee: 1, State: model.TxConfirmed, BlockHash: "blk", BlockHeight: 9},
	}

	stored, err := s.repo.UpsertTransactions(s.testCtx, txs)
	s.Require().NoError(err)
	s.Len(stored, 2)

	confirmed := txs[1]
	confirmed.Total = 999
	again, err := s.repo.UpsertTransactions(s.testCtx, []model.Transaction{confirmed})
	s.Require().NoError(err)
	s.EqualValues(20, again[0].Total, "confirmed transaction is immutable")

	got, err := s.repo.TransactionsByAddress(s.testCtx, genesisAddress, time.Time{})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("a1", got[0].Hash)
	s.Equal("b2", got[1].Hash)
	s.Equal([]string{otherAddress, "x"}, got[0].Outputs)
	s.Equal(stored[1].ID, got[0].ID)

	recent, err := s.repo.TransactionsByAddress(s.testCtx, genesisAddress, ts.Add(30*time.Minute))
	s.Require().NoError(err)
	s.Require().Len(recent, 1)
	s.Equal("b2", recent[0].Hash)

	tagged, err := s.repo.SetTransactionPatterns(s.testCtx, "a1", []model.Pattern{model.PatternSmurfing, model.PatternMixer})
	s.Require().NoError(err)
	s.True(tagged)
	tagged, err = s.repo.SetTransactionPatterns(s.testCtx, "a1", []model.Pattern{model.PatternLayering})
	s.Require().NoError(err)
	s.False(tagged)

	got, err = s.repo.TransactionsByAddress(s.testCtx, genesisAddress, time.Time{})
	s.Require().NoError(err)
	s.Equal([]model.Pattern{model.PatternSmurfing, model.PatternMixer}, got[0].Patterns)
}

func (s *RepositorySuite) TestBlockRoundTrip() {
	b := model.Block{Hash: "00000000000000000001", Height: 800000, Timestamp: time.Date(2023, 7, 24, 0, 0, 0, 0, time.UTC), Fees: 12, Volume: 3400}

	first, err := s.repo.UpsertBlock(s.testCtx, b)
	s.Require().NoError(err)

	b.Fees = 1
	second, err := s.repo.UpsertBlock(s.testCtx, b)
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)
	s.EqualValues(12, second.Fees, "blocks are immutable")

	got, err := s.repo.GetBlock(s.testCtx, b.Hash)
	s.Require().NoError(err)
	s.Equal(uint64(800000), got.Height)
	s.True(got.Timestamp.Equal(b.Timestamp))
}

func (s *RepositorySuite) TestClusterSnapshots() {
	older, err := s.repo.InsertCluster(s.testCtx, model.Cluster{
		BaseAddress: genesisAddress, Members: []string{genesisAddress}, Label: "Exchange", WalletID: "w1",
		Algorithm: model.ClusterByLabel, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	newer, err := s.repo.InsertCluster(s.testCtx, model.Cluster{
		BaseAddress: genesisAddress, Members: []string{genesisAddress, otherAddress}, Label: "Exchange", WalletID: "w1",
		Algorithm: model.ClusterByLabel, RiskType: model.RiskMedium, CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	s.NotEqual(older.ID, newer.ID)

	got, err := s.repo.ClusterByMember(s.testCtx, otherAddress, model.ClusterByLabel)
	s.Require().NoError(err)
	s.Equal(newer.ID, got.ID)
	s.Equal(model.RiskMedium, got.RiskType)

	_, err = s.repo.ClusterByMember(s.testCtx, otherAddress, model.ClusterByCoOccurrence)
	s.ErrorIs(err, model.ErrNotFound)

	labelled, err := s.repo.LabelledClusters(s.testCtx)
	s.Require().NoError(err)
	s.Require().Len(labelled, 1)
	s.Equal(newer.ID, labelled[0].ID)
}

func (s *RepositorySuite) TestTraceResultCache() {
	conn := model.Connection{Level: 1, From: otherAddress, To: genesisAddress, Amount: 5, TxHash: "h", State: model.TxConfirmed, Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	_, err := s.repo.InsertTraceResult(s.testCtx, model.TraceResult{
		Direction: model.DirectionOrigin, Seed: genesisAddress, MaxDepth: 3, Connections: []model.Connection{conn}, Total: 1,
	})
	s.Require().NoError(err)

	got, err := s.repo.TraceResult(s.testCtx, model.TraceKey{Seed: genesisAddress, Direction: model.DirectionOrigin, MaxDepth: 9})
	s.Require().NoError(err)
	s.Require().Len(got.Connections, 1)
	s.Equal(conn.From, got.Connections[0].From)
	s.True(conn.Timestamp.Equal(got.Connections[0].Timestamp))

	_, err = s.repo.TraceResult(s.testCtx, model.TraceKey{Seed: genesisAddress, Direction: model.DirectionDestination, MaxDepth: 1})
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *RepositorySuite) TestRiskProfileAndAlerts() {
	factors := model.RiskFactors{ReportCount: 4, ReportScore: 3, Categories: []string{"RANSOMWARE"}, CategoryScore: 3, Activity: model.ActivityRecent, ActivityScore: 3, Total: 9, Band: model.RiskCritical}
	s.Require().NoError(s.repo.UpsertRiskProfile(s.testCtx, model.RiskProfile{Address: genesisAddress, Band: model.RiskCritical, Total: 9, Factors: factors}))

	got, err := s.repo.GetRiskProfile(s.testCtx, genesisAddress)
	s.Require().NoError(err)
	s.Equal(model.RiskCritical, got.Band)
	s.Equal(factors.Categories, got.Factors.Categories)

	s.Require().NoError(s.repo.InsertRiskAnalyses(s.testCtx, []model.RiskAnalysis{{Address: genesisAddress, Factors: factors, AnalyzedAt: time.Now()}}))

	exists, err := s.repo.AlertExists(s.testCtx, genesisAddress, model.RiskCritical)
	s.Require().NoError(err)
	s.False(exists)

	_, err = s.repo.InsertAlert(s.testCtx, model.Alert{Address: genesisAddress, Band: model.RiskCritical, Total: 9})
	s.Require().NoError(err)

	exists, err = s.repo.AlertExists(s.testCtx, genesisAddress, model.RiskCritical)
	s.Require().NoError(err)
	s.True(exists)
}

func (s *RepositorySuite) TestReportsAndRelations() {
	reports := []model.Report{
		{ID: "r1", Address: genesisAddress, Category: "SCAM", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Trusted: true, Domains: []string{"evil.example"}},
		{ID: "r2", Address: otherAddress, Category: "PHISHING", CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
	s.Require().NoError(s.repo.UpsertReports(s.testCtx, reports))
	s.Require().NoError(s.repo.UpsertReports(s.testCtx, reports[:1]))

	got, err := s.repo.ReportsByAddresses(s.testCtx, []string{genesisAddress})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.True(got[0].Trusted)
	s.Equal([]string{"evil.example"}, got[0].Domains)

	all, err := s.repo.AllReports(s.testCtx)
	s.Require().NoError(err)
	s.Len(all, 2)

	rel := model.NewRelation(otherAddress, genesisAddress, model.RelationSharedCategory, "SCAM", time.Now())
	s.Require().NoError(s.repo.UpsertRelations(s.testCtx, []model.Relation{rel, rel}))
	s.Require().NoError(s.repo.UpsertRelations(s.testCtx, []model.Relation{rel}))

	relations, err := s.repo.RelationsByAddress(s.testCtx, otherAddress)
	s.Require().NoError(err)
	s.Require().Len(relations, 1)
	s.Equal(genesisAddress, relations[0].AddressA)
}

func (s *RepositorySuite) TestTemporalCorrelationInsert() {
	_, err := s.repo.InsertTemporalCorrelation(s.testCtx, model.TemporalCorrelation{
		Addresses: []string{genesisAddress, otherAddress},
		Window:    "24h",
		Series:    map[string]model.HourSeries{genesisAddress: {"2024-01-01 10:00": 1}},
		Pairs:     []model.CorrelatedPair{{A: genesisAddress, B: otherAddress, Score: 1}},
	})
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Ping(s.testCtx))
}
