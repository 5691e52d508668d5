package handlers

import (
	"testing"
)

func TestJobManager_CreateAndGet(t *testing.T) {
	m := NewJobManager()

	job := m.CreateJob("job-1", "my-journal", "My Journal", "letter")
	if job.Status != JobStatusPending {
		t.Errorf("new job should be pending, got %s", job.Status)
	}
	if job.Notebook != "my-journal" || job.PageSize != "letter" {
		t.Errorf("job fields not set: %+v", job)
	}

	if got := m.GetJob("job-1"); got != job {
		t.Error("GetJob should return the created job")
	}
	if got := m.GetJob("nope"); got != nil {
		t.Error("GetJob should return nil for unknown ID")
	}
}

func TestJobManager_DeleteJob(t *testing.T) {
	m := NewJobManager()
	m.CreateJob("job-1", "nb", "NB", "a4")
	m.DeleteJob("job-1")
	if m.GetJob("job-1") != nil {
		t.Error("deleted job should not be retrievable")
	}
}

func TestJobManager_ListJobs(t *testing.T) {
	m := NewJobManager()
	m.CreateJob("a", "nb", "NB", "letter")
	m.CreateJob("b", "nb", "NB", "letter")
	if got := len(m.ListJobs()); got != 2 {
		t.Errorf("expected 2 jobs, got %d", got)
	}
}

func TestEventBroadcaster_SendToListeners(t *testing.T) {
	var b EventBroadcaster

	ch1 := b.AddListener()
	ch2 := b.AddListener()

	b.SendEvent(JobEvent{Type: "progress", Message: "halfway"})

	for i, ch := range []chan JobEvent{ch1, ch2} {
		select {
		case ev := <-ch:
			if ev.Type != "progress" {
				t.Errorf("listener %d: expected progress event, got %s", i, ev.Type)
			}
		default:
			t.Errorf("listener %d: no event delivered", i)
		}
	}
}

func TestEventBroadcaster_RemoveListenerClosesChannel(t *testing.T) {
	var b EventBroadcaster

	ch := b.AddListener()
	b.RemoveListener(ch)

	if _, ok := <-ch; ok {
		t.Error("removed listener channel should be closed")
	}

	// Sending after removal must not panic.
	b.SendEvent(JobEvent{Type: "progress"})
}

func TestEventBroadcaster_FullBufferDoesNotBlock(t *testing.T) {
	var b EventBroadcaster

	ch := b.AddListener()
	for range eventChannelBuffer + 10 {
		b.SendEvent(JobEvent{Type: "progress"})
	}
	if len(ch) != eventChannelBuffer {
		t.Errorf("expected full buffer of %d, got %d", eventChannelBuffer, len(ch))
	}
}

func TestExportJob_CancelSetsStatus(t *testing.T) {
	m := NewJobManager()
	job := m.CreateJob("job-1", "nb", "NB", "letter")

	ch := job.AddListener()
	job.Cancel()

	if got := job.GetStatus(); got != JobStatusCancelled {
		t.Errorf("expected cancelled status, got %s", got)
	}
	select {
	case ev := <-ch:
		if ev.Type != "cancelled" {
			t.Errorf("expected cancelled event, got %s", ev.Type)
		}
	default:
		t.Error("no cancelled event delivered")
	}
}

func TestExportJob_OutputPathHiddenUntilCompleted(t *testing.T) {
	m := NewJobManager()
	job := m.CreateJob("job-1", "nb", "NB", "letter")

	job.mu.Lock()
	job.outputPath = "/somewhere/nb.pdf"
	job.mu.Unlock()

	if got := job.OutputPath(); got != "" {
		t.Errorf("pending job should expose no output path, got %q", got)
	}

	job.mu.Lock()
	job.Status = JobStatusCompleted
	job.mu.Unlock()

	if got := job.OutputPath(); got != "/somewhere/nb.pdf" {
		t.Errorf("completed job should expose output path, got %q", got)
	}
}

func TestIsJobTerminal(t *testing.T) {
	terminal := []JobStatus{JobStatusCompleted, JobStatusFailed, JobStatusCancelled}
	for _, s := range terminal {
		if !isJobTerminal(s) {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []JobStatus{JobStatusPending, JobStatusRunning} {
		if isJobTerminal(s) {
			t.Errorf("%s should not be terminal", s)
		}
	}
}
