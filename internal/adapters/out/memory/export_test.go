package memory

// HeldLocks reports how many load ids currently have a lock entry.
func HeldLocks(l *LoadLocker) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
