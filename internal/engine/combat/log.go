package combat

import (
	"fmt"
	"strings"
)

// EntryType classifies a combat log line
type EntryType string

// Log entry types
const (
	EntryPlayerAttack EntryType = "player-attack"
	EntryEnemyAttack  EntryType = "enemy-attack"
	EntryEnemyKilled  EntryType = "enemy-killed"
	EntryPlayerDied   EntryType = "player-died"
	EntryLoot         EntryType = "loot"
	EntryGold         EntryType = "gold"
	EntryCrit         EntryType = "crit"
)

// LogEntry is one human readable combat line
type LogEntry struct {
	ID      int
	Type    EntryType
	Message string
	Damage  int
}

// Log turns engine events into log entries. A MaxEntries above zero keeps
// only the newest entries.
type Log struct {
	MaxEntries int

	entries []LogEntry
	nextID  int
}

// NewLog creates a log holding at most maxEntries lines, or unbounded when
// maxEntries is zero
func NewLog(maxEntries int) *Log {
	return &Log{MaxEntries: maxEntries}
}

// Entries returns a copy of the log, oldest first
func (l *Log) Entries() []LogEntry {
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear empties the log
func (l *Log) Clear() {
	l.entries = nil
}

// Listen is a Listener; pass it to Engine.Subscribe
func (l *Log) Listen(ev Event) {
	switch ev := ev.(type) {
	case EventPlayerAttacked:
		if ev.Critical {
			l.add(EntryCrit, fmt.Sprintf("Critical hit! You hit %s for %d", ev.TargetName, ev.Damage), ev.Damage)
			return
		}
		l.add(EntryPlayerAttack, fmt.Sprintf("You hit %s for %d", ev.TargetName, ev.Damage), ev.Damage)
	case EventEnemyAttacked:
		l.add(EntryEnemyAttack, fmt.Sprintf("%s hits you for %d", ev.AttackerName, ev.Damage), ev.Damage)
	case EventEnemyKilled:
		l.add(EntryEnemyKilled, fmt.Sprintf("%s defeated! +%d XP", ev.Enemy.Name, ev.Experience), 0)
		if ev.Gold > 0 {
			l.add(EntryGold, fmt.Sprintf("+%d gold", ev.Gold), 0)
		}
		if len(ev.Loot) > 0 {
			names := make([]string, 0, len(ev.Loot))
			for _, item := range ev.Loot {
				names = append(names, item.Name())
			}
			l.add(EntryLoot, "Loot: "+strings.Join(names, ", "), 0)
		}
	case EventPlayerDied:
		name := "an enemy"
		if ev.Enemy != nil {
			name = ev.Enemy.Name
		}
		l.add(EntryPlayerDied, "You were defeated by "+name, 0)
	case EventCombatRestarted, EventCombatStarted:
		l.Clear()
	}
}

func (l *Log) add(t EntryType, msg string, dmg int) {
	l.nextID++
	l.entries = append(l.entries, LogEntry{ID: l.nextID, Type: t, Message: msg, Damage: dmg})
	if l.MaxEntries > 0 && len(l.entries) > l.MaxEntries {
		l.entries = append([]LogEntry(nil), l.entries[len(l.entries)-l.MaxEntries:]...)
	}
}
