package rover

import (
	"net/url"
	"strconv"
	"time"

	"github.com/fieldbotics/robowire/internal/httpio"
)

// navPath is the fixed CGI endpoint all navigation queries go to.
const navPath = "/rev.cgi"

// DefaultTimeout bounds each query round-trip.
const DefaultTimeout = 2 * time.Second

// Navigation action codes.
const (
	actionGetReport     = 1
	actionStartRecord   = 2
	actionAbortRecord   = 3
	actionStopRecord    = 4
	actionDeletePath    = 5
	actionGetPathList   = 6
	actionPlayForward   = 7
	actionPlayBackward  = 8
	actionStopPlaying   = 9
	actionPausePlaying  = 10
	actionGoHome        = 12
	actionGoHomeAndDock = 13
	actionUpdateHome    = 14
	actionResetNav      = 17
	actionManualDrive   = 18
)

// Manual drive directions.
const (
	DriveForward = 1 + iota
	DriveBackward
	DriveLeft
	DriveRight
	DriveRotateLeft
	DriveRotateRight
	DriveForwardLeft
	DriveForwardRight
	DriveBackLeft
	DriveBackRight
	DriveHeadUp
	DriveHeadDown
	DriveHeadMiddle
)

// Report is the robot's position fix: beacon-grid coordinates, heading in
// radians, the room beacon in use, and its signal strength.
type Report struct {
	X, Y           float64
	Theta          float64
	RoomID         int
	SignalStrength int
}

// Client issues navigation commands to one robot.
type Client struct {
	req     *httpio.Requester
	timeout time.Duration
}

// NewClient creates a client for the robot at base (scheme + host). A nil
// httpClient selects the standard client; a zero timeout selects
// DefaultTimeout.
func NewClient(base string, httpClient httpio.Client, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		req:     httpio.NewRequester(base, httpClient),
		timeout: timeout,
	}
}

// nav runs one action query and decodes the nav payload.
func (c *Client) nav(action int, extra url.Values) (string, error) {
	values := url.Values{
		"Cmd":    {"nav"},
		"action": {strconv.Itoa(action)},
	}
	for k, vs := range extra {
		values[k] = vs
	}
	body, err := c.req.Query(navPath, values, c.timeout)
	if err != nil {
		return "", err
	}
	return DecodeNav(body)
}

// GetReport fetches and parses the position report.
func (c *Client) GetReport() (Report, error) {
	payload, err := c.nav(actionGetReport, nil)
	if err != nil {
		return Report{}, err
	}
	var r Report
	if r.X, err = FloatField(payload, "x"); err != nil {
		return Report{}, err
	}
	if r.Y, err = FloatField(payload, "y"); err != nil {
		return Report{}, err
	}
	if r.Theta, err = FloatField(payload, "theta"); err != nil {
		return Report{}, err
	}
	if r.RoomID, err = IntField(payload, "room"); err != nil {
		return Report{}, err
	}
	if r.SignalStrength, err = IntField(payload, "ss"); err != nil {
		return Report{}, err
	}
	return r, nil
}

// ManualDrive moves the robot one step in a direction at speed 1
// (fastest) to 10 (slowest).
func (c *Client) ManualDrive(direction, speed int) error {
	_, err := c.nav(actionManualDrive, url.Values{
		"drive": {strconv.Itoa(direction)},
		"speed": {strconv.Itoa(speed)},
	})
	return err
}

// HeadUp, HeadDown and HeadMiddle position the camera mast through the
// manual drive action.
func (c *Client) HeadUp() error     { return c.ManualDrive(DriveHeadUp, 1) }
func (c *Client) HeadDown() error   { return c.ManualDrive(DriveHeadDown, 1) }
func (c *Client) HeadMiddle() error { return c.ManualDrive(DriveHeadMiddle, 1) }

// GoHome drives the robot to its home position.
func (c *Client) GoHome() error {
	_, err := c.nav(actionGoHome, nil)
	return err
}

// GoHomeAndDock drives the robot home and onto its charging dock.
func (c *Client) GoHomeAndDock() error {
	_, err := c.nav(actionGoHomeAndDock, nil)
	return err
}

// UpdateHomePosition makes the current position the new home.
func (c *Client) UpdateHomePosition() error {
	_, err := c.nav(actionUpdateHome, nil)
	return err
}

// ResetNavStateMachine aborts whatever the navigation controller is doing.
func (c *Client) ResetNavStateMachine() error {
	_, err := c.nav(actionResetNav, nil)
	return err
}

// StartRecording begins recording a path from the current position.
func (c *Client) StartRecording() error {
	_, err := c.nav(actionStartRecord, nil)
	return err
}

// AbortRecording discards the path being recorded.
func (c *Client) AbortRecording() error {
	_, err := c.nav(actionAbortRecord, nil)
	return err
}

// StopRecording stores the recorded path under the given name.
func (c *Client) StopRecording(name string) error {
	_, err := c.nav(actionStopRecord, url.Values{"name": {name}})
	return err
}

// DeletePath removes a stored path.
func (c *Client) DeletePath(name string) error {
	_, err := c.nav(actionDeletePath, url.Values{"name": {name}})
	return err
}

// PathList returns the raw stored-path listing payload.
func (c *Client) PathList() (string, error) {
	return c.nav(actionGetPathList, nil)
}

// PlayPathForward replays a stored path from its start.
func (c *Client) PlayPathForward(name string) error {
	_, err := c.nav(actionPlayForward, url.Values{"name": {name}})
	return err
}

// PlayPathBackward replays a stored path in reverse.
func (c *Client) PlayPathBackward(name string) error {
	_, err := c.nav(actionPlayBackward, url.Values{"name": {name}})
	return err
}

// StopPlaying halts path playback.
func (c *Client) StopPlaying() error {
	_, err := c.nav(actionStopPlaying, nil)
	return err
}

// PausePlaying pauses path playback.
func (c *Client) PausePlaying() error {
	_, err := c.nav(actionPausePlaying, nil)
	return err
}
