package widgets

// DragItem is a draggable source: a stable identifier and its visible text.
type DragItem struct {
	ID   string
	Text string
}

// DragDropSurface is the drop target.
type DragDropSurface interface {
	SetArmed(armed bool)
	AppendDropped(item DragItem)
	ClearDropped()
}

// DragDrop moves copies of source items into a drop target, at most once each.
type DragDrop struct {
	sources []DragItem
	dropped []DragItem
	payload string
	armed   bool
	surface DragDropSurface
	log     Recorder
}

// NewDragDrop creates a drag-and-drop widget over the given sources.
func NewDragDrop(surface DragDropSurface, log Recorder, sources []DragItem) *DragDrop {
	return &DragDrop{
		sources: append([]DragItem(nil), sources...),
		surface: surface,
		log:     log,
	}
}

// Sources returns the draggable items.
func (d *DragDrop) Sources() []DragItem {
	return append([]DragItem(nil), d.sources...)
}

// Dropped returns the items currently in the target, in drop order.
func (d *DragDrop) Dropped() []DragItem {
	return append([]DragItem(nil), d.dropped...)
}

// Armed reports whether a drag is hovering the target.
func (d *DragDrop) Armed() bool { return d.armed }

// Dragging reports the identifier carried by the current drag, if any.
func (d *DragDrop) Dragging() (string, bool) {
	return d.payload, d.payload != ""
}

// DragStart begins dragging the source with id.
func (d *DragDrop) DragStart(id string) {
	if d.surface == nil {
		return
	}
	item, ok := d.source(id)
	if !ok {
		return
	}
	d.payload = id
	d.log.Append("Drag started", item.Text)
}

// DragOver arms the target while a drag hovers it.
func (d *DragDrop) DragOver() {
	if d.surface == nil || d.armed {
		return
	}
	d.armed = true
	d.surface.SetArmed(true)
}

// DragLeave disarms the target.
func (d *DragDrop) DragLeave() {
	if d.surface == nil || !d.armed {
		return
	}
	d.armed = false
	d.surface.SetArmed(false)
}

// DragEnd finishes the drag without a drop.
func (d *DragDrop) DragEnd() {
	d.DragLeave()
	d.payload = ""
}

// Drop places a copy of the dragged source into the target. A missing source
// or one already in the target is ignored.
func (d *DragDrop) Drop() {
	if d.surface == nil {
		return
	}
	d.DragLeave()
	id := d.payload
	d.payload = ""
	item, ok := d.source(id)
	if !ok || d.contains(id) {
		return
	}
	d.dropped = append(d.dropped, item)
	d.surface.AppendDropped(item)
	d.log.Append("Item dropped", item.Text)
}

// Reset empties the target.
func (d *DragDrop) Reset() {
	if d.surface == nil {
		return
	}
	d.dropped = nil
	d.surface.ClearDropped()
	d.log.Append("Drag & Drop reset", "")
}

func (d *DragDrop) source(id string) (DragItem, bool) {
	if id == "" {
		return DragItem{}, false
	}
	for _, s := range d.sources {
		if s.ID == id {
			return s, true
		}
	}
	return DragItem{}, false
}

func (d *DragDrop) contains(id string) bool {
	for _, it := range d.dropped {
		if it.ID == id {
			return true
		}
	}
	return false
}
