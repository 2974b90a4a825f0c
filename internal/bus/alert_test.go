package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertAutoDismissesAfterTimeout(t *testing.T) {
	b := New()
	p := NewAlertPresenter(b, nil)
	defer p.Close()

	b.PublishBottomAlert(BottomAlert{Message: "Failed to get cart", Timeout: 40 * time.Millisecond})

	message, visible := p.Current()
	require.True(t, visible)
	assert.Equal(t, "Failed to get cart", message)

	time.Sleep(80 * time.Millisecond)
	_, visible = p.Current()
	assert.False(t, visible)
}

func TestSecondAlertReplacesAndRestartsTimer(t *testing.T) {
	b := New()
	p := NewAlertPresenter(b, nil)
	defer p.Close()

	b.PublishBottomAlert(BottomAlert{Message: "first", Timeout: 60 * time.Millisecond})
	time.Sleep(30 * time.Millisecond)
	b.PublishBottomAlert(BottomAlert{Message: "second", Timeout: 60 * time.Millisecond})

	// Seul le second message est visible, pas de file d'attente
	message, visible := p.Current()
	require.True(t, visible)
	assert.Equal(t, "second", message)

	// Le premier minuteur aurait expiré ici : le second l'a remplacé
	time.Sleep(40 * time.Millisecond)
	message, visible = p.Current()
	assert.True(t, visible)
	assert.Equal(t, "second", message)

	// Disparition un plein délai après le second envoi
	time.Sleep(40 * time.Millisecond)
	_, visible = p.Current()
	assert.False(t, visible)
}

func TestAlertDefaultTimeout(t *testing.T) {
	b := New()
	p := NewAlertPresenter(b, nil)
	defer p.Close()

	b.PublishBottomAlert(BottomAlert{Message: "sans délai"})

	_, visible := p.Current()
	assert.True(t, visible)
}

func TestAlertNotifiesOnChange(t *testing.T) {
	b := New()
	type change struct {
		message string
		visible bool
	}
	changes := make(chan change, 4)

	p := NewAlertPresenter(b, func(message string, visible bool) {
		changes <- change{message, visible}
	})
	defer p.Close()

	b.PublishBottomAlert(BottomAlert{Message: "hello", Timeout: 30 * time.Millisecond})

	assert.Equal(t, change{"hello", true}, <-changes)
	assert.Equal(t, change{"hello", false}, <-changes)
}
