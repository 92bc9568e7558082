package catalog

// The gallery mirrors the brand's published line-up. Prices stay "Coming Soon"
// until the launch price list lands.
var products = []Product{
	// Lips
	{ID: "lip-1", Name: "MTF Lip Balm", Category: "Lips", Price: "Coming Soon", Image: "products/lips/lip-balm.png", Description: "Experience pure hydration with Moh Tee Flair. This ultra-nourishing balm locks in moisture, leaving your lips cushiony-soft with a delicate, plump finish.", Rating: 5.0},
	{ID: "lip-2", Name: "MTF Lip Gloss", Category: "Lips", Price: "Coming Soon", Image: "products/lips/lip-gloss.png", Description: "Elevate your shine with Moh Tee Flair. Our non-sticky, Vitamin E infused formula glides effortlessly for a luscious, high-impact glow that lasts.", Rating: 4.8},
	{ID: "lip-3", Name: "MTF Lipstick", Category: "Lips", Price: "Coming Soon", Image: "products/lips/lipstick.png", Description: "The hallmark of Moh Tee Flair elegance. A rich, highly-pigmented formula that delivers full opacity in one stroke with a sophisticated silky-matte texture.", Rating: 4.9},
	{ID: "lip-4", Name: "MTF Liquid Lipstick", Category: "Lips", Price: "Coming Soon", Image: "products/lips/liquid-lipstick.png", Description: "State-of-the-art wear from Moh Tee Flair. This weightless liquid formula dries to a flawless, transfer-proof matte finish without compromising on comfort.", Rating: 5.0},
	{ID: "lip-5", Name: "MTF Liquid Lipstick II", Category: "Lips", Price: "Coming Soon", Image: "products/lips/liquid-lipstick-2.png", Description: "Modern velvet by Moh Tee Flair. A refined take on our classic liquid lip, providing a soft-focus blurred effect and unparalleled all-day hydration.", Rating: 4.7},

	// Face
	{ID: "face-1", Name: "MTF Foundation", Category: "Face", Price: "Coming Soon", Image: "products/face/foundation.png", Description: "The perfect canvas by Moh Tee Flair. A full-coverage, lightweight foundation that conceals imperfections while reacting to your skin for a natural, luminous finish.", Rating: 5.0},
	{ID: "face-2", Name: "MTF Hydration Cream", Category: "Face", Price: "Coming Soon", Image: "products/face/hydration-cream.png", Description: "Moh Tee Flair's secret to radiance. Deeply quench your skin with this rich, botanical-infused cream designed to strengthen the skin barrier and leave a stunning glow.", Rating: 4.9},
	{ID: "face-3", Name: "MTF Primer", Category: "Face", Price: "Coming Soon", Image: "products/face/primer.png", Description: "Blur the lines with Moh Tee Flair. This smoothing, semi-matte primer creates the ultimate base for flawless application and extended makeup longevity.", Rating: 4.8},
	{ID: "face-4", Name: "MTF Setting Spray", Category: "Face", Price: "Coming Soon", Image: "products/face/setting-spray.png", Description: "The final touch of Moh Tee Flair. Lock in your masterpiece with a fine, refreshing mist that prevents fading and keeps your skin looking freshly applied all day.", Rating: 5.0},
	{ID: "face-5", Name: "MTF Toner", Category: "Face", Price: "Coming Soon", Image: "products/face/toner.png", Description: "Balance and brighten with Moh Tee Flair. A gentle, pH-equilibrating toner that refines pores and refreshes your complexion for a clear, healthy-looking skin.", Rating: 4.7},

	// Makeup Tools
	{ID: "tool-1", Name: "MTF Eyeshadow", Category: "Makeup Tools", Price: "Coming Soon", Image: "products/tools/eyeshadow.png", Description: "Theatrical flair for your eyes. This Moh Tee Flair palette offers high-definition pigments and effortless blendability for both subtle and bold expressions.", Rating: 5.0},
	{ID: "tool-2", Name: "MTF Liquid Felt-Tip Eyeliner Pen", Category: "Makeup Tools", Price: "Coming Soon", Image: "products/tools/eyeliner-pen.png", Description: "Precision craft by Moh Tee Flair. Our sharp felt-tip pen delivers a rich, waterproof black line for the perfect sculpted flare in just one stroke.", Rating: 4.8},
	{ID: "tool-3", Name: "MTF Makeup Brush", Category: "Makeup Tools", Price: "Coming Soon", Image: "products/tools/makeup-brush.png", Description: "Professional grade by Moh Tee Flair. Feather-soft, high-density bristles designed for seamless blending and precision application of your favorite cosmetics.", Rating: 4.9},
	{ID: "tool-4", Name: "MTF Mascara", Category: "Makeup Tools", Price: "Coming Soon", Image: "products/tools/mascara.png", Description: "Extreme length and definition. Moh Tee Flair's specialty brush separates and flares every lash for a dramatic, clump-free, volumized look.", Rating: 5.0},
	{ID: "tool-5", Name: "MTF Pressed Powder", Category: "Makeup Tools", Price: "Coming Soon", Image: "products/tools/pressed-powder.png", Description: "Set your look with Moh Tee Flair. A finely milled, weightless pressed powder that controls shine and provides a blurred, matte finish for hours.", Rating: 4.7},

	// Sponges
	{ID: "sp-1", Name: "MTF Makeup Blending Sponge", Category: "Sponges", Price: "Coming Soon", Image: "products/sponges/blending-sponge-1.png", Description: "The ultimate Moh Tee Flair blender. Ultra-soft and expansive, it ensures a seamless, streak-free application for all your liquid and cream products.", Rating: 5.0},
	{ID: "sp-2", Name: "MTF Blending Sponge I", Category: "Sponges", Price: "Coming Soon", Image: "products/sponges/blending-sponge-2.png", Description: "Moh Tee Flair precision. This uniquely shaped sponge is designed to reach every inner corner for a truly flawless complexion.", Rating: 4.9},
	{ID: "sp-3", Name: "MTF Blending Sponge II", Category: "Sponges", Price: "Coming Soon", Image: "products/sponges/blending-sponge-3.png", Description: "Multi-use versatility by Moh Tee Flair. A durable, professional-grade blender that maintains its feather-soft texture after every wash.", Rating: 4.8},
	{ID: "sp-4", Name: "MTF Blending Sponge III", Category: "Sponges", Price: "Coming Soon", Image: "products/sponges/blending-sponge-4.png", Description: "Contour with confidence safely with Moh Tee Flair. This flat-edge sponge is perfect for baking and defining your facial features with precision.", Rating: 4.7},
	{ID: "sp-5", Name: "MTF Blending Sponge IV", Category: "Sponges", Price: "Coming Soon", Image: "products/sponges/blending-sponge-5.png", Description: "Teardrop perfection from Moh Tee Flair. Specially designed for smooth under-eye concealer application without settling into lines.", Rating: 4.8},
	{ID: "sp-6", Name: "MTF Blending Sponge V", Category: "Sponges", Price: "Coming Soon", Image: "products/sponges/blending-sponge-6.png", Description: "Full face coverage by Moh Tee Flair. The expansive flat side handles large areas quickly, delivering a polished and even finish.", Rating: 4.9},

	// Bags
	{ID: "bag-1", Name: "MTF Makeup Bag", Category: "Bags", Price: "Coming Soon", Image: "products/bags/makeup-bag-1.png", Description: "Theatrical flair for your essentials. A stylish, Moh Tee Flair branded organizer that keeps your beauty tools safe and accessible with craft and confidence.", Rating: 5.0},
	{ID: "bag-2", Name: "MTF Makeup Bag I", Category: "Bags", Price: "Coming Soon", Image: "products/bags/makeup-bag-2.png", Description: "Travel in style with Moh Tee Flair. This compact and durable bag is perfect for on-the-go glam, featuring the signature premium aesthetic.", Rating: 4.8},
	{ID: "bag-3", Name: "MTF Makeup Bag II", Category: "Bags", Price: "Coming Soon", Image: "products/bags/makeup-bag-3.png", Description: "Uncompromising capacity by Moh Tee Flair. A large, sophisticated beauty bag with multiple compartments to house your entire collection.", Rating: 4.9},

	// Skin Care
	{ID: "sk-1", Name: "MTF Body Oil", Category: "Skin Care", Price: "Coming Soon", Image: "products/skincare/body-oil.png", Description: "Liquid radiance from Moh Tee Flair. This luxurious, nourishing oil absorbs quickly to leave your skin feeling silky-smooth and looking healthier than ever.", Rating: 5.0},
	{ID: "sk-2", Name: "MTF Serums", Category: "Skin Care", Price: "Coming Soon", Image: "products/skincare/serums.png", Description: "Targeted skin health by Moh Tee Flair. A potent formulation designed to brighten, even tone, and hydrate for a glow that comes from within.", Rating: 4.9},
	{ID: "sk-3", Name: "MTF Shower Gel", Category: "Skin Care", Price: "Coming Soon", Image: "products/skincare/shower-gel.png", Description: "Sensory indulgence from Moh Tee Flair. A sophisticated shower gel that cleanses gently while enveloping you in our signature subtle fragrance.", Rating: 4.8},
	{ID: "sk-4", Name: "MTF Soap", Category: "Skin Care", Price: "Coming Soon", Image: "products/skincare/soap.png", Description: "Pure and gentle by Moh Tee Flair. Our artisanal soap provides a refreshing and calming cleanse, suitable for even the most sensitive skin types.", Rating: 4.7},
}
