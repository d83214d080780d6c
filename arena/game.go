package arena

import (
	"fmt"
	"image"

	"github.com/spaghettifunk/arena/engine"
	"github.com/spaghettifunk/arena/engine/animation"
	"github.com/spaghettifunk/arena/engine/assets/loaders"
	"github.com/spaghettifunk/arena/engine/audio"
	"github.com/spaghettifunk/arena/engine/config"
	"github.com/spaghettifunk/arena/engine/core"
	"github.com/spaghettifunk/arena/engine/renderer"
	"github.com/spaghettifunk/arena/engine/scene"
)

// terminal rows are about twice as tall as columns are wide
const cellAspect = 2

const preloadWorkers = 4

type ArenaGame struct {
	*engine.Game
}

type gameState struct {
	cfg        *config.Config
	configPath string

	scene    *scene.SceneState
	player   audio.Player
	textures map[string]*loaders.Texture
	font     *loaders.BitmapFont
	watcher  *config.Watcher

	now       float64
	listeners []listener
}

type listener struct {
	code core.EventCode
	id   core.ListenerID
}

// NewArenaGame wires the arena to the engine hooks. configPath may be empty,
// in which case nothing is watched.
func NewArenaGame(cfg *config.Config, configPath string) (*ArenaGame, error) {
	level, err := core.ParseLogLevel(cfg.App.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, core.ErrInvalidConfig)
	}
	ag := &ArenaGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				Name:        cfg.App.Name,
				LogLevel:    level,
				TargetFPS:   cfg.App.TargetFPS,
				LimitFrames: true,
				AssetsPath:  cfg.Assets.Path,
				WatchAssets: cfg.Assets.Watch,
			},
			State: &gameState{
				cfg:        cfg,
				configPath: configPath,
				textures:   make(map[string]*loaders.Texture),
			},
		},
	}

	ag.FnBoot = ag.Boot
	ag.FnInitialize = ag.Initialize
	ag.FnUpdate = ag.Update
	ag.FnRender = ag.Render
	ag.FnOnResize = ag.OnResize
	ag.FnOnDrag = ag.OnDrag
	ag.FnShutdown = ag.Shutdown

	return ag, nil
}

func (g *ArenaGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *ArenaGame) Boot() error {
	core.LogInfo("booting %s...", g.ApplicationConfig.Name)
	return nil
}

func (g *ArenaGame) Initialize() error {
	state := g.state()
	state.scene = scene.NewSceneState(SettingsFrom(state.cfg))
	if state.player == nil {
		state.player = audio.NewPlayer(state.cfg.Audio.Enabled, state.cfg.Audio.SampleRate, state.cfg.Audio.Volume)
	}

	g.loadTextures()
	g.loadFont()

	g.register(core.EVENT_CODE_KEY_PRESSED, g.onKey)
	g.register(core.EVENT_CODE_MOUSE_WHEEL, g.onWheel)
	g.register(core.EVENT_CODE_SWISH, g.onArenaEvent)
	g.register(core.EVENT_CODE_SCORE, g.onArenaEvent)
	g.register(core.EVENT_CODE_CONFIG_RELOADED, g.onConfigReloaded)
	g.register(core.EVENT_CODE_ASSET_RELOADED, g.onAssetReloaded)

	if state.configPath != "" {
		w, err := config.Watch(state.configPath, func(path string) {
			if err := core.EventPost(core.EventContext{
				Type: core.EVENT_CODE_CONFIG_RELOADED,
				Data: &core.ReloadEvent{Path: path},
			}); err != nil {
				core.LogWarn("config reload not posted: %s", err)
			}
		})
		if err != nil {
			core.LogWarn("config hot reload disabled: %s", err)
		} else {
			state.watcher = w
		}
	}
	return nil
}

func (g *ArenaGame) register(code core.EventCode, fn core.FnOnEvent) {
	state := g.state()
	state.listeners = append(state.listeners, listener{code: code, id: core.EventRegister(code, fn)})
}

func (g *ArenaGame) loadTextures() {
	if g.AssetManager == nil {
		return
	}
	state := g.state()
	textures, err := g.AssetManager.PreloadTextures(preloadWorkers)
	if err != nil {
		core.LogWarn("texture preload: %s", err)
		return
	}
	for name, tex := range textures {
		state.textures[name] = tex
	}
	core.LogInfo("%d textures loaded", len(state.textures))
}

func (g *ArenaGame) loadFont() {
	if g.AssetManager == nil {
		return
	}
	state := g.state()
	f, err := g.AssetManager.LoadFont(state.cfg.Assets.Font)
	if err != nil {
		core.LogWarn("scoreboard font: %s, using the built-in face", err)
		state.font = nil
		return
	}
	state.font = f
}

func (g *ArenaGame) Update(deltaTime float64) error {
	state := g.state()
	state.now += deltaTime
	for _, ev := range state.scene.Update(state.now) {
		code := core.EVENT_CODE_SWISH
		if ev.Kind == scene.EventScore {
			code = core.EVENT_CODE_SCORE
		}
		core.EventFire(core.EventContext{
			Type: code,
			Data: &core.ArenaEvent{Side: int(ev.Side), Score: ev.Score},
		})
	}
	return nil
}

func (g *ArenaGame) Render(packet *renderer.RenderPacket, deltaTime float64) error {
	state := g.state()
	*packet = *renderer.NewRenderPacket(deltaTime, state.scene, state.textures)
	packet.Overlay = renderer.Overlay{
		Banner: g.scoreBanner(),
		Lines:  g.statusLines(),
	}
	return nil
}

func (g *ArenaGame) scoreBanner() *image.RGBA {
	state := g.state()
	text := fmt.Sprintf("%d-%d", state.scene.Score.Home, state.scene.Score.Away)
	if state.font != nil {
		return state.font.Render(text, 1)
	}
	return loaders.RenderFallback(text, 1)
}

func (g *ArenaGame) statusLines() []string {
	s := g.state().scene
	light := "off"
	if s.Lighting.Enabled {
		light = s.Lighting.Mode.String()
	}
	fps, frameMS := core.MetricsFrame()
	return []string{
		fmt.Sprintf("view %s  light %s  ambient %d diffuse %d specular %d  video %d  %.0f fps %.1f ms",
			s.Camera.Mode, light, s.Lighting.Ambient, s.Lighting.Diffuse, s.Lighting.Specular, s.Video.Frame, fps, frameMS),
		"1/2 shoot  r reset  n video  v view  k light mode  l light  m move  z/x/c sliders  esc quit",
	}
}

func (g *ArenaGame) OnResize(width uint32, height uint32) error {
	g.state().scene.Camera.SetAspect(int(width), int(height)*cellAspect)
	return nil
}

func (g *ArenaGame) OnDrag(dx, dy int) {
	g.state().scene.HandleDrag(dx, dy)
}

func (g *ArenaGame) Shutdown() error {
	state := g.state()
	for _, l := range state.listeners {
		core.EventUnregister(l.code, l.id)
	}
	state.listeners = nil
	if state.watcher != nil {
		if err := state.watcher.Close(); err != nil {
			core.LogWarn("%s", err)
		}
		state.watcher = nil
	}
	if state.player != nil {
		state.player.Close()
	}
	if state.scene != nil {
		state.scene.Destroy()
	}
	return nil
}

func (g *ArenaGame) onKey(context core.EventContext) {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}
	state := g.state()
	if !state.scene.HandleKey(ke.KeyCode, ke.Shift, state.now) && ke.KeyCode != core.KEY_ESCAPE {
		core.LogDebug("unbound key 0x%x", uint16(ke.KeyCode))
	}
}

func (g *ArenaGame) onWheel(context core.EventContext) {
	if me, ok := context.Data.(*core.MouseEvent); ok {
		g.state().scene.HandleWheel(me.Scroll)
	}
}

func (g *ArenaGame) onArenaEvent(context core.EventContext) {
	ae, ok := context.Data.(*core.ArenaEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}
	state := g.state()
	side := animation.Side(ae.Side)
	switch context.Type {
	case core.EVENT_CODE_SWISH:
		core.LogDebug("swish at the %s basket", side)
		state.player.PlaySwish()
	case core.EVENT_CODE_SCORE:
		core.LogInfo("%s scores, now %d", side, ae.Score)
		state.player.PlayBuzzer()
	}
}

func (g *ArenaGame) onConfigReloaded(context core.EventContext) {
	state := g.state()
	cfg, err := config.Load(state.configPath)
	if err != nil {
		core.LogWarn("config reload rejected, keeping the old settings: %s", err)
		return
	}
	if level, err := core.ParseLogLevel(cfg.App.LogLevel); err == nil {
		core.SetLogLevel(level)
	}
	state.cfg = cfg
	state.scene.ApplySettings(SettingsFrom(cfg))
	core.LogInfo("config reloaded from %s", state.configPath)
}

func (g *ArenaGame) onAssetReloaded(context core.EventContext) {
	re, ok := context.Data.(*core.ReloadEvent)
	if !ok || g.AssetManager == nil {
		return
	}
	state := g.state()
	name := loaders.TextureName(re.Path)
	switch {
	case g.AssetManager.Has(name, loaders.ResourceTypeTexture):
		tex, err := g.AssetManager.LoadTexture(name)
		if err != nil {
			core.LogWarn("texture %s reload: %s", name, err)
			return
		}
		state.textures[name] = tex
		core.LogInfo("texture %s reloaded", name)
	case g.AssetManager.Has(name, loaders.ResourceTypeBitmapFont):
		g.loadFont()
	}
}
