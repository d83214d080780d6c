package assets

import (
	"sync"

	"github.com/spaghettifunk/arena/engine/assets/loaders"
	"github.com/spaghettifunk/arena/engine/core"
	"github.com/spaghettifunk/arena/engine/jobs"
)

// PreloadTextures decodes every indexed texture on a pool of workers and
// returns the ones that loaded. Failures are logged and skipped.
func (am *AssetManager) PreloadTextures(workers int) (map[string]*loaders.Texture, error) {
	names := am.Names(loaders.ResourceTypeTexture)
	textures := make(map[string]*loaders.Texture, len(names))
	if len(names) == 0 {
		return textures, nil
	}
	if workers > len(names) {
		workers = len(names)
	}

	js, err := jobs.NewJobSystem(workers, len(names))
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	for _, name := range names {
		js.Submit(jobs.JobTask{
			Name:        "texture " + name,
			InputParams: name,
			OnStart: func(p interface{}) (interface{}, error) {
				return am.LoadTexture(p.(string))
			},
			OnComplete: func(r interface{}) {
				tex := r.(*loaders.Texture)
				mu.Lock()
				textures[tex.Name] = tex
				mu.Unlock()
			},
			OnFailure: func(err error) {
				core.LogWarn("texture preload: %s", err)
			},
		})
	}
	js.Wait()
	return textures, js.Shutdown()
}
