// Package customattr enumerates the reserved keys of a block's exported
// attribute dictionary. Several names carry a trailing underscore so they can
// never collide with a real attribute parsed from user configuration.
package customattr

const (
	BlockName = "block_name_"
	BlockType = "block_type_"
	FilePath  = "file_path_"
	Config    = "config_"
	Label     = "label_"
	ID        = "id_"
	Source    = "source_"

	Hash                 = "hash"
	RenderingBreadcrumbs = "rendering_breadcrumbs_"
	ResourceType         = "resource_type_"

	ModuleDependency    = "module_dependency_"
	ModuleDependencyNum = "module_dependency_num_"

	// ChangedAttributes exists only while the content hash is computed and is
	// stripped before the dictionary is returned.
	ChangedAttributes = "changed_attributes"

	// SelfReference is a parsed attribute name that would shadow block
	// metadata; the export view renames it to SelfReferenceAlias.
	SelfReference      = "self"
	SelfReferenceAlias = "self_"
)
