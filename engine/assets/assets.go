package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/arena/engine/assets/loaders"
	"github.com/spaghettifunk/arena/engine/core"
)

type AssetInfo struct {
	Path       string
	Type       loaders.ResourceType
	LastLoaded time.Time
}

// AssetManager indexes the files under the assets directory by base name,
// decodes them on demand and drops cached copies when they change on disk.
type AssetManager struct {
	root    string
	assets  map[string]AssetInfo
	loaders map[loaders.ResourceType]Loader
	cache   map[string]*loaders.Resource

	mutex sync.RWMutex

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[loaders.ResourceType]Loader),
		cache:    make(map[string]*loaders.Resource),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}, nil
}

// Initialize scans assetsDir. With watch set, changes under it are tracked
// and announced with EVENT_CODE_ASSET_RELOADED.
func (am *AssetManager) Initialize(assetsDir string, watch bool) error {
	am.root = assetsDir

	am.registerLoader(loaders.ResourceTypeTexture, &loaders.TextureLoader{})
	am.registerLoader(loaders.ResourceTypeBitmapFont, &loaders.BitmapFontLoader{})

	if !watch {
		close(am.stopped)
		return am.scan(assetsDir)
	}
	go am.start()
	return am.addRecursive(assetsDir)
}

// AddRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	if am.isClosed {
		return errors.New("asset watcher already closed")
	}
	return am.watchRecursive(name, true)
}

func (am *AssetManager) scan(name string) error {
	return am.watchRecursive(name, false)
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType loaders.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// Has reports whether an asset of the given name and type was indexed.
func (am *AssetManager) Has(name string, resourceType loaders.ResourceType) bool {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	info, ok := am.assets[name]
	return ok && info.Type == resourceType
}

// Names lists the indexed assets of one type.
func (am *AssetManager) Names(resourceType loaders.ResourceType) []string {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	var out []string
	for name, info := range am.assets {
		if info.Type == resourceType {
			out = append(out, name)
		}
	}
	return out
}

// LoadAsset returns the decoded resource, loading it on first use.
func (am *AssetManager) LoadAsset(name string, resourceType loaders.ResourceType, params interface{}) (*loaders.Resource, error) {
	am.mutex.RLock()
	asset, exists := am.assets[name]
	res, cached := am.cache[name]
	loader, loaderExists := am.loaders[asset.Type]
	am.mutex.RUnlock()

	if !exists || asset.Type != resourceType {
		return nil, fmt.Errorf("%s %q: %w", resourceType, name, core.ErrAssetNotFound)
	}
	if cached {
		return res, nil
	}
	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type %s: %w", asset.Type, core.ErrUnsupportedAsset)
	}

	// decode without holding the lock so preload jobs run side by side
	res, err := loader.Load(asset.Path, params)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	if existing, ok := am.cache[name]; ok {
		return existing, nil
	}
	asset.LastLoaded = time.Now()
	am.assets[name] = asset
	am.cache[name] = res
	return res, nil
}

func (am *AssetManager) LoadTexture(name string) (*loaders.Texture, error) {
	res, err := am.LoadAsset(name, loaders.ResourceTypeTexture, nil)
	if err != nil {
		return nil, err
	}
	return res.Data.(*loaders.Texture), nil
}

// LoadFont loads a bitmap font by its path relative to the assets root.
func (am *AssetManager) LoadFont(relPath string) (*loaders.BitmapFont, error) {
	res, err := am.LoadAsset(loaders.TextureName(relPath), loaders.ResourceTypeBitmapFont, nil)
	if err != nil {
		return nil, err
	}
	return res.Data.(*loaders.BitmapFont), nil
}

func (am *AssetManager) unloadLocked(name string) error {
	res, ok := am.cache[name]
	if !ok {
		return nil
	}
	delete(am.cache, name)
	if loader, ok := am.loaders[am.assets[name].Type]; ok {
		return loader.Unload(res)
	}
	return nil
}

// Close stops the watcher goroutine and drops every cached resource.
func (am *AssetManager) Close() error {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return nil
	}
	am.isClosed = true
	for name := range am.cache {
		if err := am.unloadLocked(name); err != nil {
			core.LogWarn("unload %s: %s", name, err)
		}
	}
	am.mutex.Unlock()

	close(am.done)
	<-am.stopped
	return am.fsnotify.Close()
}

func (am *AssetManager) start() {
	defer close(am.stopped)
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := am.watchRecursive(e.Name, true); err != nil {
						core.LogWarn("watch %s: %s", e.Name, err)
					}
				}
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				if am.handleFileEvent(e.Name) {
					am.announce(e.Name)
				}
			}
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				am.removeAsset(e.Name)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("%s", err)

		case <-am.done:
			return
		}
	}
}

func (am *AssetManager) announce(path string) {
	core.LogDebug("asset changed: %s", path)
	if err := core.EventPost(core.EventContext{
		Type: core.EVENT_CODE_ASSET_RELOADED,
		Data: &core.ReloadEvent{Path: path},
	}); err != nil {
		core.LogWarn("asset reload for %s not posted: %s", path, err)
	}
}

// watchRecursive indexes every file under path and, with watch set, adds
// each directory to the watch list.
func (am *AssetManager) watchRecursive(path string, watch bool) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if watch {
				return am.fsnotify.Add(walkPath)
			}
			return nil
		}
		am.handleFileEvent(walkPath)
		return nil
	})
}

// handleFileEvent indexes a created or modified file and evicts its cached
// copy. It reports whether the file is a known asset type.
func (am *AssetManager) handleFileEvent(path string) bool {
	assetType := determineAssetType(path)
	if assetType == loaders.ResourceTypeNone {
		return false
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()

	name := loaders.TextureName(path)
	if err := am.unloadLocked(name); err != nil {
		core.LogWarn("unload %s: %s", name, err)
	}
	am.assets[name] = AssetInfo{
		Path: path,
		Type: assetType,
	}
	return true
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	name := loaders.TextureName(path)
	if info, ok := am.assets[name]; ok && info.Path == path {
		if err := am.unloadLocked(name); err != nil {
			core.LogWarn("unload %s: %s", name, err)
		}
		delete(am.assets, name)
	}
}

func determineAssetType(path string) loaders.ResourceType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp", ".png":
		return loaders.ResourceTypeTexture
	case ".fnt":
		return loaders.ResourceTypeBitmapFont
	case ".toml":
		return loaders.ResourceTypeConfig
	default:
		return loaders.ResourceTypeNone
	}
}
