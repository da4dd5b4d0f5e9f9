package scenes

import "github.com/yohamta/donburi/ecs"

// layerDefault is the only render layer; renderers draw in the order added.
const layerDefault ecs.LayerID = 0

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}
