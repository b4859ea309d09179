package storage

import (
	"strconv"
	"time"

	"pomodoro/internal/core/model"
)

const (
	backgroundTimeKey = "pomodoroBackgroundTime"
	currentTimeKey    = "pomodoroCurrentTime"
	isRunningKey      = "pomodoroIsRunning"
)

// SnapshotStore keeps the background snapshot in three ephemeral keys.
type SnapshotStore struct {
	kv KeyValue
}

// NewSnapshotStore creates a snapshot store over the given key-value storage.
func NewSnapshotStore(kv KeyValue) *SnapshotStore {
	return &SnapshotStore{kv: kv}
}

// Save writes the snapshot, replacing any previous one.
func (store *SnapshotStore) Save(snapshot model.Snapshot) {
	store.kv.SetString(backgroundTimeKey, strconv.FormatInt(snapshot.SuspendedAt.UnixMilli(), 10))
	store.kv.SetString(currentTimeKey, strconv.Itoa(snapshot.RemainingSeconds))
	store.kv.SetString(isRunningKey, strconv.FormatBool(snapshot.WasRunning))
}

// Load returns the stored snapshot. ok is false when any key is missing or
// unreadable.
func (store *SnapshotStore) Load() (model.Snapshot, bool) {
	rawTime := store.kv.String(backgroundTimeKey)
	rawRemaining := store.kv.String(currentTimeKey)
	if rawTime == "" || rawRemaining == "" {
		return model.Snapshot{}, false
	}

	millis, err := strconv.ParseInt(rawTime, 10, 64)
	if err != nil {
		return model.Snapshot{}, false
	}
	remaining, err := strconv.Atoi(rawRemaining)
	if err != nil {
		return model.Snapshot{}, false
	}

	return model.Snapshot{
		SuspendedAt:      time.UnixMilli(millis),
		RemainingSeconds: remaining,
		WasRunning:       store.kv.String(isRunningKey) == "true",
	}, true
}

// Present reports whether any snapshot key is stored.
func (store *SnapshotStore) Present() bool {
	return store.kv.String(backgroundTimeKey) != "" ||
		store.kv.String(currentTimeKey) != "" ||
		store.kv.String(isRunningKey) != ""
}

// Clear deletes all snapshot keys.
func (store *SnapshotStore) Clear() {
	store.kv.RemoveValue(backgroundTimeKey)
	store.kv.RemoveValue(currentTimeKey)
	store.kv.RemoveValue(isRunningKey)
}
