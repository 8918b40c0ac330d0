package repository

import "storefront/internal/models"

// seedDocument es el catálogo inicial que se escribe en el primer
// arranque (o cuando el archivo de datos no se puede leer).
func seedDocument() *document {
	return &document{
		Products: []models.Product{
			{ID: "1", Name: "NOIR MESH TEE", Description: "Architectural mesh construction with raw hem detailing.", Price: 85.00, Image: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?q=80&w=1000", Category: "TOPS", Stock: 50},
			{ID: "2", Name: "SCULPTED LINEN TROUSER", Description: "High-waisted architectural silhouette in heavy Italian linen.", Price: 245.00, Image: "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?q=80&w=1000", Category: "BOTTOMS", Stock: 30},
			{ID: "3", Name: "MONO KNIT PULLOVER", Description: "Dense-knit recycled cashmere with exaggerated proportions.", Price: 320.00, Image: "https://images.unsplash.com/photo-1576566588028-4147f3842f27?q=80&w=1000", Category: "TOPS", Stock: 20},
			{ID: "4", Name: "STRUCTURED WOOL COAT", Description: "Double-faced virgin wool with sharp, precise tailoring.", Price: 580.00, Image: "https://images.unsplash.com/photo-1539533018447-63fcce6671b3?q=80&w=1000", Category: "OUTERWEAR", Stock: 15},
			{ID: "5", Name: "SILK COLUMN DRESS", Description: "Floor-length sand-washed silk with a fluid drape.", Price: 450.00, Image: "https://images.unsplash.com/photo-1595777457583-95e059d581b8?q=80&w=1000", Category: "DRESSES", Stock: 25},
			{ID: "6", Name: "SELVEDGE DENIM 01", Description: "14oz Japanese raw denim, straight-cut classic.", Price: 210.00, Image: "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?q=80&w=1000", Category: "BOTTOMS", Stock: 40},
			{ID: "7", Name: "ARCHIVE TOTE", Description: "Heavyweight waxed cotton with industrial hardware.", Price: 165.00, Image: "https://images.unsplash.com/photo-1544816153-12ad5d7133a2?q=80&w=1000", Category: "ACCESSORIES", Stock: 60},
			{ID: "8", Name: "BRUTALIST BOOT", Description: "Polished calfskin with a chunky, geometric sole.", Price: 395.00, Image: "https://images.unsplash.com/photo-1638247025967-b4e38f787b76?q=80&w=1000", Category: "SHOES", Stock: 12},
			{ID: "9", Name: "RIBBED SILK POLO", Description: "Technical silk rib with a seamless finish.", Price: 185.00, Image: "https://images.unsplash.com/photo-1626497748470-281923f99025?q=80&w=1000", Category: "TOPS", Stock: 35},
			{ID: "10", Name: "MODULAR SHORT", Description: "Technical nylon with multi-pocket system.", Price: 145.00, Image: "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?q=80&w=1000", Category: "BOTTOMS", Stock: 45},
			{ID: "11", Name: "DOWN PUFFER VEST", Description: "Hyper-matte shell with premium fill.", Price: 295.00, Image: "https://images.unsplash.com/photo-1620934508433-4f51457186d1?q=80&w=1000", Category: "OUTERWEAR", Stock: 18},
			{ID: "12", Name: "HEAVY JERSEY TEE", Description: "300gsm organic cotton, boxy cropped fit.", Price: 95.00, Image: "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?q=80&w=1000", Category: "TOPS", Stock: 55},
			{ID: "13", Name: "ASYMMETRIC SKIRT", Description: "Geometric construction in technical wool.", Price: 265.00, Image: "https://images.unsplash.com/photo-1583337130417-3346a1be7dee?q=80&w=1000", Category: "BOTTOMS", Stock: 22},
			{ID: "14", Name: "PRECISION SHIRT", Description: "Laser-cut seams, concealed placket, fine poplin.", Price: 195.00, Image: "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?q=80&w=1000", Category: "TOPS", Stock: 30},
			{ID: "15", Name: "MINIMAL DERBY", Description: "Single-piece leather construction, matte finish.", Price: 340.00, Image: "https://images.unsplash.com/photo-1614252235316-8c857d38b5f4?q=80&w=1000", Category: "SHOES", Stock: 15},
			{ID: "16", Name: "MERINO BALACLAVA", Description: "Seamless 3D knit in ultra-fine merino.", Price: 110.00, Image: "https://images.unsplash.com/photo-1576871337632-b9aef4c17ab9?q=80&w=1000", Category: "ACCESSORIES", Stock: 80},
			{ID: "17", Name: "CARGO PANT V2", Description: "Integrated belt system, articulated knees.", Price: 285.00, Image: "https://images.unsplash.com/photo-1594938298603-c8148c4dae35?q=80&w=1000", Category: "BOTTOMS", Stock: 28},
			{ID: "18", Name: "DENIM SHELL", Description: "Overdyed denim with structural stitching.", Price: 310.00, Image: "https://images.unsplash.com/photo-1551537482-f2075a1d41f2?q=80&w=1000", Category: "OUTERWEAR", Stock: 20},
			{ID: "19", Name: "CONCEPT GRAPHIC", Description: "Abstract typography on heavy tech-jersey.", Price: 125.00, Image: "https://images.unsplash.com/photo-1503342217505-b0a15ec3261c?q=80&w=1000", Category: "TOPS", Stock: 40},
			{ID: "20", Name: "LINEN OVER-SHIRT", Description: "Boxy fit with oversized utilitarian pockets.", Price: 225.00, Image: "https://images.unsplash.com/photo-1598033129183-c4f50c7176c8?q=80&w=1000", Category: "TOPS", Stock: 35},
		},
		Orders: []models.Order{},
	}
}
