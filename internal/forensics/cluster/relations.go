package cluster

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

// DetectRelations links address to every other address that shares a report
// domain, a report category or a wallet id with it, stores the links and
// returns them.
func (d *Detector) DetectRelations(ctx context.Context, address string) (_ []model.Relation, err error) {
	start := time.Now()
	defer func() {
		d.metrics.Observe("detect_relations", err, start)
	}()

	if err = model.ValidateAddress(address, d.params); err != nil {
		return nil, err
	}

	allReports, err := d.store.AllReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}
	clusters, err := d.store.LabelledClusters(ctx)
	if err != nil {
		return nil, fmt.Errorf("load clusters: %w", err)
	}

	idx := newRelationIndex()
	for _, r := range allReports {
		for _, domain := range r.Domains {
			idx.add(model.RelationSharedDomain, strings.ToLower(domain), r.Address)
		}
		idx.add(model.RelationSharedCategory, model.NormalizeCategory(r.Category), r.Address)
	}
	for _, c := range clusters {
		for _, member := range c.Members {
			idx.add(model.RelationSharedWallet, c.WalletID, member)
		}
	}

	now := d.now()
	var relations []model.Relation
	for _, kind := range []model.RelationKind{model.RelationSharedDomain, model.RelationSharedWallet, model.RelationSharedCategory} {
		for _, value := range idx.valuesOf(kind, address) {
			for _, other := range idx.addresses(kind, value) {
				if other == address {
					continue
				}
				relations = append(relations, model.NewRelation(address, other, kind, value, now))
			}
		}
	}

	if err = d.store.UpsertRelations(ctx, relations); err != nil {
		return nil, fmt.Errorf("store relations: %w", err)
	}
	return relations, nil
}

// RelationsForAddress returns the stored relations of address.
func (d *Detector) RelationsForAddress(ctx context.Context, address string) ([]model.Relation, error) {
	if err := model.ValidateAddress(address, d.params); err != nil {
		return nil, err
	}
	relations, err := d.store.RelationsByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("load relations: %w", err)
	}
	return relations, nil
}

type relationKey struct {
	kind  model.RelationKind
	value string
}

// relationIndex maps (kind, value) to addresses and back.
type relationIndex struct {
	byValue   map[relationKey]map[string]struct{}
	byAddress map[model.RelationKind]map[string]map[string]struct{}
}

func newRelationIndex() *relationIndex {
	return &relationIndex{
		byValue:   make(map[relationKey]map[string]struct{}),
		byAddress: make(map[model.RelationKind]map[string]map[string]struct{}),
	}
}

func (i *relationIndex) add(kind model.RelationKind, value, address string) {
	if value == "" || address == "" {
		return
	}
	key := relationKey{kind: kind, value: value}
	if i.byValue[key] == nil {
		i.byValue[key] = make(map[string]struct{})
	}
	i.byValue[key][address] = struct{}{}

	if i.byAddress[kind] == nil {
		i.byAddress[kind] = make(map[string]map[string]struct{})
	}
	if i.byAddress[kind][address] == nil {
		i.byAddress[kind][address] = make(map[string]struct{})
	}
	i.byAddress[kind][address][value] = struct{}{}
}

func (i *relationIndex) valuesOf(kind model.RelationKind, address string) []string {
	return sortedKeys(i.byAddress[kind][address])
}

func (i *relationIndex) addresses(kind model.RelationKind, value string) []string {
	return sortedKeys(i.byValue[relationKey{kind: kind, value: value}])
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
