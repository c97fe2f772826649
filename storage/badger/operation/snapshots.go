package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/merklequery/merkled/model/merkle"
)

func InsertSnapshot(stateID merkle.StateID, snap *merkle.Snapshot) func(*badger.Txn) error {
	return insert(makePrefix(codeSnapshot, stateID), snap)
}

func RetrieveSnapshot(stateID merkle.StateID, snap *merkle.Snapshot) func(*badger.Txn) error {
	return retrieve(makePrefix(codeSnapshot, stateID), snap)
}

func IndexSnapshotHeight(height uint64, stateID merkle.StateID) func(*badger.Txn) error {
	return insert(makePrefix(codeHeightToState, height), stateID)
}

func LookupSnapshotHeight(height uint64, stateID *merkle.StateID) func(*badger.Txn) error {
	return retrieve(makePrefix(codeHeightToState, height), stateID)
}

func InsertHeadHeight(height uint64) func(*badger.Txn) error {
	return insert(makePrefix(codeHeadHeight), height)
}

func UpdateHeadHeight(height uint64) func(*badger.Txn) error {
	return upsert(makePrefix(codeHeadHeight), height)
}

func RetrieveHeadHeight(height *uint64) func(*badger.Txn) error {
	return retrieve(makePrefix(codeHeadHeight), height)
}
