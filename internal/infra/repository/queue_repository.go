package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
)

// enqueueScript claims the trigger state and appends the entry in one step.
// KEYS: trigger, seq, entry, queue. ARGV: entry json, queue id, queued state.
var enqueueScript = redis.NewScript(`
if not redis.call('SET', KEYS[1], ARGV[3], 'NX') then
	return 0
end
local seq = redis.call('INCR', KEYS[2])
redis.call('SET', KEYS[3], ARGV[1])
redis.call('ZADD', KEYS[4], seq, ARGV[2])
return 1
`)

// dismissScript removes the entry only if it is still queued. Dismissing the exact alarm retires
// the reminder, so both of its trigger states expire after the retention period.
// KEYS: queue, entry, trigger, exact trigger, advance trigger. ARGV: queue id, acknowledged state,
// retention seconds (0 keeps the states).
var dismissScript = redis.NewScript(`
if redis.call('ZREM', KEYS[1], ARGV[1]) == 0 then
	return 0
end
redis.call('SET', KEYS[3], ARGV[2], 'KEEPTTL')
redis.call('DEL', KEYS[2])
local retention = tonumber(ARGV[3])
if retention > 0 then
	redis.call('EXPIRE', KEYS[4], retention)
	redis.call('EXPIRE', KEYS[5], retention)
end
return 1
`)

// acknowledgedRetention outlives any evaluation that could still see the retired reminder.
const acknowledgedRetention = 7 * 24 * time.Hour

type queueRepository struct {
	client *redis.Client
}

func NewQueueRepository(client *redis.Client) domain.QueueRepository {
	return &queueRepository{
		client: client,
	}
}

func (r *queueRepository) Enqueue(ctx context.Context, entry *domain.QueueEntry) (bool, error) {
	if entry == nil || entry.QueueID == "" || !entry.TriggerType.Valid() {
		return false, ErrInvalidQueueEntry
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return false, ErrInvalidQueueEntry
	}

	keys := []string{
		triggerKey(entry.CallerID, entry.ReminderID, entry.TriggerType),
		sequenceKey(entry.CallerID),
		entryKey(entry.CallerID, entry.QueueID),
		queueKey(entry.CallerID),
	}

	added, err := enqueueScript.Run(ctx, r.client, keys,
		data, entry.QueueID, string(domain.TriggerStateQueued),
	).Int()
	if err != nil {
		return false, transient(err)
	}

	return added == 1, nil
}

func (r *queueRepository) ListQueue(ctx context.Context, callerID uint) ([]domain.QueueEntry, error) {
	ids, err := r.client.ZRange(ctx, queueKey(callerID), 0, -1).Result()
	if err != nil {
		return nil, transient(err)
	}

	entries := make([]domain.QueueEntry, 0, len(ids))
	if len(ids) == 0 {
		return entries, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, entryKey(callerID, id))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, transient(err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Removed between ZRANGE and MGET.
			continue
		}

		var entry domain.QueueEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidQueueEntry, ids[i])
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *queueRepository) Remove(ctx context.Context, callerID uint, queueID string) (*domain.QueueEntry, error) {
	key := entryKey(callerID, queueID)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrQueueEntryNotFound
		}
		return nil, transient(err)
	}

	var entry domain.QueueEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, ErrInvalidQueueEntry
	}

	keys := []string{
		queueKey(callerID),
		key,
		triggerKey(callerID, entry.ReminderID, entry.TriggerType),
		triggerKey(callerID, entry.ReminderID, domain.TriggerExact),
		triggerKey(callerID, entry.ReminderID, domain.TriggerAdvance),
	}

	var retention int64
	if entry.TriggerType.IsExact() {
		retention = int64(acknowledgedRetention / time.Second)
	}

	removed, err := dismissScript.Run(ctx, r.client, keys,
		queueID, string(domain.TriggerStateAcknowledged), retention,
	).Int()
	if err != nil {
		return nil, transient(err)
	}
	if removed == 0 {
		return nil, domain.ErrQueueEntryNotFound
	}

	return &entry, nil
}

func (r *queueRepository) GetTriggerState(ctx context.Context, callerID, reminderID uint, trigger domain.TriggerType) (domain.TriggerState, error) {
	state, err := r.client.Get(ctx, triggerKey(callerID, reminderID, trigger)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.TriggerStateNotDue, nil
		}
		return domain.TriggerStateNotDue, transient(err)
	}

	return domain.TriggerState(state), nil
}

func transient(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrTransient, err)
}
