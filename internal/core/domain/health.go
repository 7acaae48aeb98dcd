package domain

// HealthSnapshot is a point-in-time observation of the managed service.
// Produced fresh on every probe, never cached. Any transport error, timeout
// or malformed response collapses to Reachable == false; callers only care
// about reachability and, when reachable, the reported uptime.
type HealthSnapshot struct {
	Reachable  bool
	UptimeSecs int64
}

// ServiceProcess is one row of supervisor status output.
type ServiceProcess struct {
	Name   string
	State  string
	PID    string
	Uptime string
}
