package model

// WorldObject — базовый класс для всех объектов в мире симуляции.
// Все объекты имеют ObjectID, Name и позицию.
// Data хранит ссылку на владельца (*Actor или *Mob).
//
// Мутируется только потоком тика симуляции, поэтому без блокировок.
type WorldObject struct {
	objectID uint32
	name     string
	position Vec3
	Data     any
}

// NewWorldObject создаёт новый объект в мире.
func NewWorldObject(objectID uint32, name string, pos Vec3) *WorldObject {
	return &WorldObject{
		objectID: objectID,
		name:     name,
		position: pos,
	}
}

// ObjectID возвращает уникальный ID объекта (immutable после создания).
func (w *WorldObject) ObjectID() uint32 {
	return w.objectID
}

// Name возвращает имя объекта.
func (w *WorldObject) Name() string {
	return w.name
}

// Position возвращает позицию объекта (value type).
func (w *WorldObject) Position() Vec3 {
	return w.position
}

// SetPosition устанавливает новую позицию объекта.
// Индекс регионов world.World не пересчитывается: мобы после AddMob не двигаются.
func (w *WorldObject) SetPosition(pos Vec3) {
	w.position = pos
}
