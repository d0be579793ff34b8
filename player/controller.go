package player

import "github.com/oomph-ac/vrloco/fade"

// Controller is the player controller that possesses a character. It owns the camera manager
// used to fade the view.
type Controller struct {
	name   string
	camera *fade.Fader
}

// NewController returns a controller with a transparent camera fade.
func NewController(name string) *Controller {
	return &Controller{name: name, camera: fade.NewFader()}
}

// Name ...
func (c *Controller) Name() string {
	return c.name
}

// Camera returns the camera fade of the controller.
func (c *Controller) Camera() *fade.Fader {
	return c.camera
}
