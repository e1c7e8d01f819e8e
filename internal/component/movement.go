// component/movement.go
package component

import "gym-guardian/internal/utils"

// Path — общий неизменяемый список точек маршрута в пикселях.
type Path []utils.Vec2
